// internal/receiver/collect.go
package receiver

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout means the frame did not complete within its window:
	// either no byte arrived at all, or inter-byte silence expired.
	ErrTimeout = errors.New("receiver: receive timeout")

	// ErrClosed means the byte source shut down mid-frame.
	ErrClosed = errors.New("receiver: byte source closed")
)

// Collect consumes bytes from in until a full frame is buffered or the
// window closes. The first byte is allowed responseTimeout; every byte
// after it restarts the shorter interByte timer. The receiver is reset
// before returning regardless of outcome, so a partial frame can never
// leak into the next cycle.
func Collect(ctx context.Context, r *Receiver, in <-chan byte, responseTimeout, interByte time.Duration) ([]byte, error) {
	defer r.Reset()

	timer := time.NewTimer(responseTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case b, ok := <-in:
			if !ok {
				return nil, ErrClosed
			}
			if r.Feed(b) == StateReady {
				return r.Frame(), nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(interByte)

		case <-timer.C:
			r.Timeout()
			return nil, ErrTimeout
		}
	}
}
