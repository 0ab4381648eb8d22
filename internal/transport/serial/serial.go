// internal/transport/serial/serial.go
package serial

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/serial"
)

// DirectionFunc switches an RS485 adapter between transmit and receive.
// Most USB adapters switch on their own; the hook exists for the ones
// driven by a GPIO line.
type DirectionFunc func(transmit bool) error

// Config describes the serial link to the transmitter.
type Config struct {
	Device   string
	BaudRate int
	Parity   string // "N", "E" or "O"

	// ReadTimeout is the port read timeout used by the pump loop.
	ReadTimeout time.Duration

	// Direction, if set, is invoked around every send.
	Direction DirectionFunc
}

// Transport drives one serial port. A single pump goroutine owns all
// reads and is the only producer on the inbound channel; the poll loop
// is the sole consumer.
type Transport struct {
	port      serial.Port
	direction DirectionFunc

	inbound chan byte
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Open opens the port and starts the read pump.
func Open(cfg Config) (*Transport, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial: device required")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.New("serial: baud rate must be > 0")
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 100 * time.Millisecond
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   cfg.Parity,
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}

	t := &Transport{
		port:      port,
		direction: cfg.Direction,
		inbound:   make(chan byte, 64),
		done:      make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// Send switches to transmit, writes the whole frame and switches back.
// It returns once the port has accepted every byte, mirroring the
// block-until-sent contract of the hardware shift register.
func (t *Transport) Send(frame []byte) error {
	if t.direction != nil {
		if err := t.direction(true); err != nil {
			return fmt.Errorf("serial: direction select tx: %w", err)
		}
	}

	for n := 0; n < len(frame); {
		w, err := t.port.Write(frame[n:])
		if err != nil {
			return fmt.Errorf("serial: write: %w", err)
		}
		n += w
	}

	if t.direction != nil {
		if err := t.direction(false); err != nil {
			return fmt.Errorf("serial: direction select rx: %w", err)
		}
	}
	return nil
}

// Bytes delivers inbound bytes one at a time. The channel closes when
// the transport shuts down.
func (t *Transport) Bytes() <-chan byte { return t.inbound }

// Close stops the pump and closes the port.
func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.closeErr = t.port.Close()
	})
	return t.closeErr
}

func (t *Transport) pump() {
	defer close(t.inbound)

	buf := make([]byte, 32)
	for {
		select {
		case <-t.done:
			return
		default:
		}

		n, err := t.port.Read(buf)
		if err != nil {
			if err == serial.ErrTimeout {
				continue
			}
			// EOF or a dead port: stop producing. The closed channel
			// surfaces as a receive error on the next poll cycle.
			return
		}

		for _, b := range buf[:n] {
			select {
			case t.inbound <- b:
			case <-t.done:
				return
			}
		}
	}
}
