// internal/receiver/receiver.go
package receiver

import "errors"

// BufferSize is the receive buffer capacity in bytes. Larger than the
// expected frame so trailing noise is absorbed instead of overflowing.
const BufferSize = 9

// State of the frame accumulation machine.
type State int

const (
	// StateIdle means no bytes of the current frame have arrived.
	StateIdle State = iota
	// StateAccumulating means a frame is partially received.
	StateAccumulating
	// StateReady means a full frame is buffered and may be consumed.
	StateReady
	// StateTimedOut means inter-byte silence expired before a full frame.
	StateTimedOut
)

// Receiver accumulates inbound bytes into a bounded frame buffer.
// It owns the buffer exclusively: bytes go in through Feed only, and the
// buffer is never read until the machine reports StateReady or times out.
type Receiver struct {
	buf      [BufferSize]byte
	count    int
	frameLen int
	state    State
}

// New creates a receiver expecting frames of frameLen bytes.
func New(frameLen int) (*Receiver, error) {
	if frameLen < 1 || frameLen > BufferSize {
		return nil, errors.New("receiver: frame length out of range")
	}
	return &Receiver{frameLen: frameLen}, nil
}

// Feed appends one inbound byte and reports the resulting state.
// Bytes arriving past buffer capacity are dropped.
func (r *Receiver) Feed(b byte) State {
	if r.count < BufferSize {
		r.buf[r.count] = b
		r.count++
	}
	if r.count >= r.frameLen {
		r.state = StateReady
	} else {
		r.state = StateAccumulating
	}
	return r.state
}

// Timeout marks the current frame as stalled. A frame that already
// reached the ready threshold stays ready.
func (r *Receiver) Timeout() State {
	if r.state != StateReady {
		r.state = StateTimedOut
	}
	return r.state
}

// Count reports how many bytes of the current frame have arrived.
func (r *Receiver) Count() int { return r.count }

// Frame returns a copy of the buffered frame. Valid only in StateReady.
func (r *Receiver) Frame() []byte {
	frame := make([]byte, r.frameLen)
	copy(frame, r.buf[:r.frameLen])
	return frame
}

// Reset zeroes the fill count so the next frame cannot alias bytes of
// this one. Called unconditionally after every processed or abandoned
// frame.
func (r *Receiver) Reset() {
	r.count = 0
	r.state = StateIdle
}
