package donation

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically marks overdue donations as expired. It runs once
// immediately and then on a fixed interval until its context is cancelled.
// Only "available" donations are swept; in-flight and terminal statuses
// are left alone.
type Sweeper struct {
	service  DonationService
	interval time.Duration
}

func NewSweeper(service DonationService, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{
		service:  service,
		interval: interval,
	}
}

// Start launches the sweep loop. Failures are logged and never stop the
// schedule.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.service.ExpireDonations(ctx)
	if err != nil {
		log.Printf("error marking expired donations: %v", err)
		return
	}
	if count > 0 {
		log.Printf("marked %d donations as expired", count)
	}
}
