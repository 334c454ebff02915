package mailing

import (
	"context"
	"log"
)

// Notifier delivers mail off the request path. Sends are fire-and-forget:
// a full queue or SMTP failure is logged and never reaches the caller.
type Notifier interface {
	Notify(toEmail, subject, body string)
	Start(ctx context.Context)
}

type message struct {
	to      string
	subject string
	body    string
}

type notifier struct {
	queue chan message
	send  func(to, subject, body string) error
}

func NewNotifier(buffer int) Notifier {
	return &notifier{
		queue: make(chan message, buffer),
		send:  SendMail,
	}
}

func (n *notifier) Notify(toEmail, subject, body string) {
	select {
	case n.queue <- message{to: toEmail, subject: subject, body: body}:
	default:
		log.Printf("mail queue full, dropping notification to %s", toEmail)
	}
}

// Start runs the delivery worker until ctx is cancelled.
func (n *notifier) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-n.queue:
				if err := n.send(m.to, m.subject, m.body); err != nil {
					log.Printf("error sending notification email to %s: %v", m.to, err)
				}
			}
		}
	}()
}
