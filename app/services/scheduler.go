package services

import (
	"context"
	"time"

	"github.com/kdlibiran/gradecalculator/app/logger"
)

// Sweeper drops expired state and reports how much it removed.
type Sweeper interface {
	Sweep() int
}

// StartScheduler starts the background task scheduler. It sweeps expired
// sessions every interval until ctx is cancelled. The returned channel is
// closed once the scheduler has stopped.
func StartScheduler(ctx context.Context, sessions Sweeper, every time.Duration, log *logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info("Scheduler started", "interval", every.String())
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Scheduler stopped")
				return
			case <-ticker.C:
				if n := sessions.Sweep(); n > 0 {
					log.Debug("Expired sessions removed", "count", n)
				}
			}
		}
	}()
	return done
}
