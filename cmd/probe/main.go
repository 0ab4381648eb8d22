// cmd/probe/main.go
//
// Commissioning tool: reads the pressure register once through a stock
// Modbus RTU client. Useful to confirm wiring and slave address before
// leaving the monitor unattended, and to cross-check its decode path.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goburrow/modbus"
)

func main() {
	var (
		device   string
		baudRate int
		slaveID  int
	)

	flag.StringVar(&device, "device", "/dev/ttyUSB0", "Serial device")
	flag.IntVar(&baudRate, "baud", 9600, "Baud rate")
	flag.IntVar(&slaveID, "slave", 1, "Slave address")
	flag.Parse()

	handler := modbus.NewRTUClientHandler(device)
	handler.BaudRate = baudRate
	handler.DataBits = 8
	handler.Parity = "N"
	handler.StopBits = 1
	handler.SlaveId = byte(slaveID)
	handler.Timeout = 1 * time.Second

	if err := handler.Connect(); err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer handler.Close()

	client := modbus.NewClient(handler)
	results, err := client.ReadHoldingRegisters(0, 1)
	if err != nil {
		log.Fatalf("read failed: %v", err)
	}
	if len(results) < 2 {
		log.Fatalf("short reply: % X", results)
	}

	pressure := uint16(results[0])<<8 | uint16(results[1])
	fmt.Printf("raw: % X\n", results)
	fmt.Printf("pressure: %d g\n", pressure)
}
