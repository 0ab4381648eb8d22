// internal/publish/publisher.go
package publish

import (
	"errors"
	"fmt"
	"strconv"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ljwang/pressure-monitor/internal/poller"
	"github.com/ljwang/pressure-monitor/internal/protocol"
	"github.com/ljwang/pressure-monitor/internal/receiver"
)

// Publisher pushes readings to an MQTT broker: the value on a retained
// state topic, and the cycle outcome on a status topic so a recorder can
// distinguish a stale value from a live one.
type Publisher struct {
	client      mqtt.Client
	stateTopic  string
	statusTopic string
	qos         byte
}

// New creates a publisher for the given sensor name under prefix.
func New(client mqtt.Client, prefix, name string, qos byte) *Publisher {
	return &Publisher{
		client:      client,
		stateTopic:  fmt.Sprintf("%s/%s/pressure/state", prefix, name),
		statusTopic: fmt.Sprintf("%s/%s/pressure/status", prefix, name),
		qos:         qos,
	}
}

// Dial connects to the broker and blocks until the connection settles.
func Dial(broker string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("publish: connect %s: %w", broker, token.Error())
	}
	return client, nil
}

// Publish delivers one reading. A failed cycle updates only the status
// topic; the retained state keeps the last good value.
func (p *Publisher) Publish(r poller.Reading) error {
	if r.Err != nil {
		return p.send(p.statusTopic, statusFor(r.Err))
	}
	if err := p.send(p.stateTopic, strconv.Itoa(int(r.Pressure))); err != nil {
		return err
	}
	return p.send(p.statusTopic, "ok")
}

func (p *Publisher) send(topic, payload string) error {
	token := p.client.Publish(topic, p.qos, true, payload)
	token.Wait()
	return token.Error()
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, receiver.ErrTimeout):
		return "timeout"
	case errors.Is(err, protocol.ErrBadHeader):
		return "bad_header"
	case errors.Is(err, protocol.ErrBadChecksum):
		return "bad_checksum"
	case errors.Is(err, protocol.ErrShortFrame):
		return "short_frame"
	default:
		return "error"
	}
}
