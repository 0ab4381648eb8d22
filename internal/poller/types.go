// internal/poller/types.go
package poller

import "time"

// Transport abstracts the serial link the poller drives.
// Send blocks until the whole frame has been handed to the hardware.
// Bytes delivers inbound bytes one at a time, in arrival order.
type Transport interface {
	Send(frame []byte) error
	Bytes() <-chan byte
}

// Reading is the snapshot produced by one poll cycle.
type Reading struct {
	Pressure uint16
	At       time.Time

	Err error // non-nil means this cycle produced no value
}
