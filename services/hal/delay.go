// services/hal/delay.go
package hal

import (
	"context"
	"time"

	"pwmdemo-go/x/timex"
)

// TimerDelay is the stock Delay backed by the runtime timer.
type TimerDelay struct{}

func (TimerDelay) DelayMs(ctx context.Context, ms uint32) error {
	t := time.NewTimer(timex.Ms(ms))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
