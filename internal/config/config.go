// internal/config/config.go
package config

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	Name   string       `yaml:"name"`
	Serial SerialConfig `yaml:"serial"`
	Poll   PollConfig   `yaml:"poll"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	Parity   string `yaml:"parity"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs        int `yaml:"interval_ms"`
	ResponseTimeoutMs int `yaml:"response_timeout_ms"`
	ByteTimeoutMs     int `yaml:"byte_timeout_ms"`
}

// ---- MQTT (optional, opt-in by setting a broker) ----

type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
}
