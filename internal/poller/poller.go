// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/ljwang/pressure-monitor/internal/protocol"
	"github.com/ljwang/pressure-monitor/internal/receiver"
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	// Interval between poll cycles.
	Interval time.Duration
	// ResponseTimeout bounds the wait for the first response byte.
	ResponseTimeout time.Duration
	// InterByteTimeout bounds the silence between response bytes.
	InterByteTimeout time.Duration
}

// Poller is a dumb, clock-driven reader of one pressure transmitter.
type Poller struct {
	cfg Config
	tr  Transport
	rx  *receiver.Receiver
}

// New creates a poller with immutable config.
func New(cfg Config, tr Transport) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.ResponseTimeout <= 0 {
		return nil, errors.New("poller: response timeout must be > 0")
	}
	if cfg.InterByteTimeout <= 0 {
		return nil, errors.New("poller: inter-byte timeout must be > 0")
	}
	if cfg.ResponseTimeout >= cfg.Interval {
		return nil, errors.New("poller: response timeout must fit inside the interval")
	}
	if tr == nil {
		return nil, errors.New("poller: transport required")
	}

	rx, err := receiver.New(protocol.ResponseLength)
	if err != nil {
		return nil, err
	}

	return &Poller{cfg: cfg, tr: tr, rx: rx}, nil
}

// PollOnce performs exactly one poll cycle: discard stale inbound bytes,
// send the fixed request, collect the response, decode. Any failure lands
// in the Reading; the cycle never aborts the caller.
func (p *Poller) PollOnce(ctx context.Context) Reading {
	res := Reading{At: time.Now()}

	p.drain()

	if err := p.tr.Send(protocol.Request); err != nil {
		res.Err = err
		return res
	}

	frame, err := receiver.Collect(ctx, p.rx, p.tr.Bytes(), p.cfg.ResponseTimeout, p.cfg.InterByteTimeout)
	if err != nil {
		res.Err = err
		return res
	}

	value, err := protocol.Decode(frame)
	if err != nil {
		res.Err = err
		return res
	}

	res.Pressure = value
	return res
}

// drain discards bytes left over from a previous cycle so they cannot be
// misread as the head of the next response.
func (p *Poller) drain() {
	for {
		select {
		case _, ok := <-p.tr.Bytes():
			if !ok {
				return
			}
		default:
			return
		}
	}
}
