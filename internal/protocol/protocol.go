// internal/protocol/protocol.go
package protocol

import (
	"errors"

	"github.com/ljwang/pressure-monitor/internal/crc"
)

// Wire constants for the pressure transmitter. Protocol-locked:
// one slave, one function code, one register.

const (
	// SlaveAddress is the fixed transmitter address.
	SlaveAddress = 0x01

	// FunctionReadHolding is the only function code in use (FC 3).
	FunctionReadHolding = 0x03

	// StartRegister / RegisterCount define the single pressure register.
	StartRegister = 0x0000
	RegisterCount = 0x0001

	// ResponseByteCount is the payload byte count the transmitter reports.
	ResponseByteCount = 0x02

	// ResponseLength is the full response frame:
	// addr, fc, count, dataHi, dataLo, crc, crc.
	ResponseLength = 7
)

var (
	ErrShortFrame  = errors.New("protocol: response shorter than expected")
	ErrBadHeader   = errors.New("protocol: response header mismatch")
	ErrBadChecksum = errors.New("protocol: response checksum mismatch")
)

// Request is the fixed poll frame sent unmodified every cycle.
var Request = crc.Append([]byte{
	SlaveAddress,
	FunctionReadHolding,
	byte(StartRegister >> 8), byte(StartRegister),
	byte(RegisterCount >> 8), byte(RegisterCount),
})

// Decode validates one response frame and extracts the pressure reading.
// Header first, then checksum, then the big-endian 16-bit value.
func Decode(frame []byte) (uint16, error) {
	if len(frame) < ResponseLength {
		return 0, ErrShortFrame
	}
	if frame[0] != SlaveAddress || frame[1] != FunctionReadHolding || frame[2] != ResponseByteCount {
		return 0, ErrBadHeader
	}
	if !crc.Verify(frame[:ResponseLength]) {
		return 0, ErrBadChecksum
	}
	return uint16(frame[3])<<8 | uint16(frame[4]), nil
}

// EncodeResponse builds a well-formed response frame for the given
// pressure value. Used by the bench simulator and tests.
func EncodeResponse(pressure uint16) []byte {
	return crc.Append([]byte{
		SlaveAddress,
		FunctionReadHolding,
		ResponseByteCount,
		byte(pressure >> 8), byte(pressure),
	})
}
