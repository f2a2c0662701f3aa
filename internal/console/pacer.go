package console

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Pacer inserts a fixed delay between table steps so a human can follow the
// dealer. A zero delay disables pacing.
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer creates a pacer on the given clock. A nil clock uses the real one.
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Pacer{clock: clock, delay: delay}
}

// Delay returns the configured pause
func (p *Pacer) Delay() time.Duration {
	if p == nil {
		return 0
	}
	return p.delay
}

// Pause blocks for the configured delay or until ctx is done
func (p *Pacer) Pause(ctx context.Context) error {
	if p == nil || p.delay <= 0 {
		return ctx.Err()
	}

	timer := p.clock.NewTimer(p.delay, "pacer")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
