// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits one Reading per interval on out.
// No overlap, no retries: a cycle that fails simply yields a Reading with
// Err set and the next tick starts fresh.
func (p *Poller) Run(ctx context.Context, out chan<- Reading) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out <- p.PollOnce(ctx)
		}
	}
}
