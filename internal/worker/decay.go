// Package worker runs the background decay sweep: once per interval every
// stored profile has its pets decayed and persisted. Reads apply decay
// lazily as well, so the sweep only keeps idle profiles fresh; decay being
// idempotent per timestamp means the two paths never double-charge.
package worker

import (
	"context"
	"log"
	"time"

	"kidsplatform/internal/application/usecase"
)

type DecaySweeper struct {
	uc       *usecase.ProfileUseCase
	interval time.Duration
}

func NewDecaySweeper(uc *usecase.ProfileUseCase, interval time.Duration) *DecaySweeper {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &DecaySweeper{uc: uc, interval: interval}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *DecaySweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("Decay sweeper stopped")
				return
			case <-ticker.C:
				s.uc.DecayAll(ctx)
			}
		}
	}()
}
