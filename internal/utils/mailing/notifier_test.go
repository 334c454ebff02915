package mailing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifierDeliversQueuedMail(t *testing.T) {
	var mu sync.Mutex
	var delivered []string

	n := &notifier{
		queue: make(chan message, 4),
		send: func(to, subject, body string) error {
			mu.Lock()
			defer mu.Unlock()
			delivered = append(delivered, to)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	n.Notify("ana@example.com", "subject", "body")
	n.Notify("ben@example.com", "subject", "body")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(delivered) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestNotifierDropsWhenQueueFull(t *testing.T) {
	// No worker running, buffer of one: the second notify must not block.
	n := &notifier{
		queue: make(chan message, 1),
		send:  func(string, string, string) error { return nil },
	}

	done := make(chan struct{})
	go func() {
		n.Notify("first@example.com", "s", "b")
		n.Notify("second@example.com", "s", "b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
	assert.Len(t, n.queue, 1)
}
