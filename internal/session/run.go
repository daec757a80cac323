package session

import (
	"context"

	"lifeview/internal/core"
)

// Run ticks the loop until the user quits or ctx is cancelled, sleeping the
// pacer's interval between ticks. The surface is closed on return.
func Run(ctx context.Context, l *Loop, pacer *core.Pacer) (err error) {
	defer func() {
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}()
	for {
		quit, err := l.Tick()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if pacer.Wait(ctx) != nil {
			return nil
		}
	}
}
