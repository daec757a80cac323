package core

import (
	"context"
	"time"
)

// DefaultTickDelay is the pause between loop iterations.
const DefaultTickDelay = 10 * time.Millisecond

// Pacer sleeps a fixed interval between loop iterations. It does not try to
// catch up on slow iterations.
type Pacer struct {
	interval time.Duration
}

// NewPacer constructs a Pacer with the given interval. Negative intervals are
// treated as zero.
func NewPacer(interval time.Duration) *Pacer {
	p := &Pacer{}
	p.SetInterval(interval)
	return p
}

// SetInterval changes the delay. It is safe to call from the main loop.
func (p *Pacer) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.interval = d
}

// Interval returns the configured delay.
func (p *Pacer) Interval() time.Duration { return p.interval }

// TPS converts the interval into ticks per second, as used by frame-driven
// backends. A zero interval maps to 60.
func (p *Pacer) TPS() int {
	if p.interval <= 0 {
		return 60
	}
	tps := int(time.Second / p.interval)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Wait blocks for one interval or until ctx is done, whichever comes first.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
