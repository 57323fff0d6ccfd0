// services/hal/ticker.go
package hal

import (
	"context"
	"time"
)

// PeriodicSource invokes a registered handler at a fixed interval. The
// handler runs on the source's goroutine, must not block, and sees strictly
// ordered invocations.
type PeriodicSource struct {
	interval time.Duration
	handler  func()
}

func NewPeriodicSource(interval time.Duration, handler func()) *PeriodicSource {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &PeriodicSource{interval: interval, handler: handler}
}

// Start launches the tick loop.
func (p *PeriodicSource) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *PeriodicSource) run(ctx context.Context) {
	tick := time.NewTicker(p.interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			p.handler()
		}
	}
}
