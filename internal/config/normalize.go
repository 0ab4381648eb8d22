// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	m := &cfg.Monitor

	if m.Name == "" {
		m.Name = "pressure"
	}

	// The transmitter itself is fixed at 9600 8N1; the defaults here only
	// spare the config file from restating that.
	if m.Serial.BaudRate == 0 {
		m.Serial.BaudRate = 9600
	}
	if m.Serial.Parity == "" {
		m.Serial.Parity = "N"
	}

	// Firmware timing: 100 ms cadence, 10 ticks of inter-byte silence.
	if m.Poll.IntervalMs == 0 {
		m.Poll.IntervalMs = 100
	}
	if m.Poll.ResponseTimeoutMs == 0 {
		m.Poll.ResponseTimeoutMs = 50
	}
	if m.Poll.ByteTimeoutMs == 0 {
		m.Poll.ByteTimeoutMs = 10
	}

	if m.MQTT.Broker != "" && m.MQTT.TopicPrefix == "" {
		m.MQTT.TopicPrefix = "sensors"
	}
}
