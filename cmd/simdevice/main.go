// cmd/simdevice/main.go
//
// Bench stand-in for the pressure transmitter: serves holding register 0
// over Modbus RTU and sweeps the value so the monitor's display visibly
// changes. Wire it to the monitor through a null-modem or RS485 pair.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goburrow/serial"
	"github.com/tbrandon/mbserver"
)

func main() {
	var (
		device   string
		baudRate int
		start    int
		step     int
	)

	flag.StringVar(&device, "device", "/dev/ttyUSB1", "Serial device to listen on")
	flag.IntVar(&baudRate, "baud", 9600, "Baud rate")
	flag.IntVar(&start, "start", 300, "Initial pressure value (g)")
	flag.IntVar(&step, "step", 5, "Value change per second")
	flag.Parse()

	srv := mbserver.NewServer()
	srv.HoldingRegisters[0] = uint16(start)

	err := srv.ListenRTU(&serial.Config{
		Address:  device,
		BaudRate: baudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  10 * time.Second,
	})
	if err != nil {
		log.Fatalf("listen on %s failed: %v", device, err)
	}
	defer srv.Close()

	log.Printf("simulated transmitter on %s, register 0 = %d", device, start)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	value := start
	for {
		select {
		case <-sigs:
			log.Print("quit signal received, exiting...")
			return

		case <-ticker.C:
			value += step
			if value > 0xFFFF || value < 0 {
				value = start
			}
			srv.HoldingRegisters[0] = uint16(value)
		}
	}
}
