// cmd/pressure-monitor/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ljwang/pressure-monitor/internal/config"
	"github.com/ljwang/pressure-monitor/internal/display"
	"github.com/ljwang/pressure-monitor/internal/poller"
	"github.com/ljwang/pressure-monitor/internal/publish"
	"github.com/ljwang/pressure-monitor/internal/transport/serial"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: pressure-monitor <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)
	m := cfg.Monitor

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Serial transport
	// --------------------

	tr, err := serial.Open(serial.Config{
		Device:   m.Serial.Device,
		BaudRate: m.Serial.BaudRate,
		Parity:   m.Serial.Parity,
	})
	if err != nil {
		log.Fatalf("serial open failed: %v", err)
	}
	defer tr.Close()

	// --------------------
	// Poller
	// --------------------

	p, err := poller.New(poller.Config{
		Interval:         time.Duration(m.Poll.IntervalMs) * time.Millisecond,
		ResponseTimeout:  time.Duration(m.Poll.ResponseTimeoutMs) * time.Millisecond,
		InterByteTimeout: time.Duration(m.Poll.ByteTimeoutMs) * time.Millisecond,
	}, tr)
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	// --------------------
	// Display panel
	// --------------------

	console := display.NewConsole(os.Stdout)
	panel, err := display.NewPanel(console)
	if err != nil {
		log.Fatalf("display init failed: %v", err)
	}

	// --------------------
	// MQTT publisher (optional)
	// --------------------

	var pub *publish.Publisher
	if m.MQTT.Broker != "" {
		client, err := publish.Dial(m.MQTT.Broker)
		if err != nil {
			log.Fatalf("mqtt connect failed: %v", err)
		}
		defer client.Disconnect(250)
		pub = publish.New(client, m.MQTT.TopicPrefix, m.Name, m.MQTT.QoS)
		log.Printf("publishing to %s as %s", m.MQTT.Broker, m.Name)
	}

	// --------------------
	// Poll loop
	// --------------------

	out := make(chan poller.Reading)
	go p.Run(ctx, out)

	log.Printf("polling %s every %dms", m.Serial.Device, m.Poll.IntervalMs)

	for {
		select {
		case <-ctx.Done():
			log.Print("quit signal received, exiting...")
			return

		case r := <-out:
			if r.Err != nil {
				// A failed cycle means no display update; the next
				// cycle starts fresh.
				log.Printf("poll failed: %v", r.Err)
			} else {
				if err := panel.ShowPressure(r.Pressure); err != nil {
					log.Printf("display write failed: %v", err)
				} else if err := console.Render(); err != nil {
					log.Printf("display render failed: %v", err)
				}
			}

			if pub != nil {
				if err := pub.Publish(r); err != nil {
					log.Printf("publish failed: %v", err)
				}
			}
		}
	}
}
