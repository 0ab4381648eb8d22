// internal/crc/crc16.go
package crc

import "sync"

// Modbus CRC16: reflected polynomial 0xA001, both running bytes start at 0xFF.
// The engine keeps the checksum as a high/low byte pair and combines each
// input byte through two 256-entry lookup tables, one per running byte.
// The big-endian rendering of the returned value is the transmit order
// (low-order CRC byte first on the wire).
const polynomial uint16 = 0xA001

var (
	tablesOnce sync.Once
	hiTable    [256]byte
	loTable    [256]byte
)

func buildTables() {
	for i := 0; i < 256; i++ {
		crc := uint16(0)
		b := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if (crc^b)&0x0001 != 0 {
				crc = (crc >> 1) ^ polynomial
			} else {
				crc >>= 1
			}
			b >>= 1
		}
		hiTable[i] = byte(crc)
		loTable[i] = byte(crc >> 8)
	}
}

// Checksum computes the CRC16 of buf.
// Pure function of the input: no state, no failure modes.
func Checksum(buf []byte) uint16 {
	tablesOnce.Do(buildTables)

	hi := byte(0xFF)
	lo := byte(0xFF)
	for _, b := range buf {
		idx := hi ^ b
		hi = lo ^ hiTable[idx]
		lo = loTable[idx]
	}
	return uint16(hi)<<8 | uint16(lo)
}

// Append returns frame with its two CRC bytes attached in wire order.
func Append(frame []byte) []byte {
	cs := Checksum(frame)
	return append(frame, byte(cs>>8), byte(cs))
}

// Verify reports whether the two trailing bytes of frame match the
// checksum of everything before them.
func Verify(frame []byte) bool {
	if len(frame) < 3 {
		return false
	}
	cs := Checksum(frame[:len(frame)-2])
	return frame[len(frame)-2] == byte(cs>>8) && frame[len(frame)-1] == byte(cs)
}
