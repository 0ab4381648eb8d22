// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	m := cfg.Monitor

	// ------------------------------------------------------------
	// SERIAL LINK
	// ------------------------------------------------------------

	if m.Serial.Device == "" {
		return fmt.Errorf("serial.device is required")
	}
	if m.Serial.BaudRate < 0 {
		return fmt.Errorf("serial.baud_rate must not be negative")
	}
	switch m.Serial.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("serial.parity must be one of N, E, O (got %q)", m.Serial.Parity)
	}

	// ------------------------------------------------------------
	// POLL TIMING
	// ------------------------------------------------------------

	if m.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll.interval_ms must not be negative")
	}
	if m.Poll.ResponseTimeoutMs < 0 {
		return fmt.Errorf("poll.response_timeout_ms must not be negative")
	}
	if m.Poll.ByteTimeoutMs < 0 {
		return fmt.Errorf("poll.byte_timeout_ms must not be negative")
	}

	// ------------------------------------------------------------
	// MQTT (opt-in)
	// ------------------------------------------------------------

	if m.MQTT.Broker != "" {
		if m.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2 (got %d)", m.MQTT.QoS)
		}
	}

	// name sanity (used in MQTT topics; ASCII only)
	for i := 0; i < len(m.Name); i++ {
		if m.Name[i] > 0x7F {
			return fmt.Errorf("name must contain ASCII characters only")
		}
	}

	return nil
}
