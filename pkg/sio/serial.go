// Package sio opens the half-duplex serial channel shared by the
// vehicle controller and the operator tools.
package sio

import (
	"flag"
	"fmt"
	"io"

	"go.bug.st/serial"
)

// Config describes the serial link. The protocol runs the link at
// 9600 baud, 8N1 by default.
type Config struct {
	Device   string
	Baud     int
	DataBits int
	Parity   string
	StopBits string
}

var defaultConfig = Config{
	Baud:     9600,
	DataBits: 8,
	Parity:   "None",
	StopBits: "One",
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "comport", defaultConfig.Device, "Serial device name.")
	flag.IntVar(&defaultConfig.Baud, "baudrate", defaultConfig.Baud, "Serial baud rate.")
	flag.IntVar(&defaultConfig.DataBits, "databits", defaultConfig.DataBits, "Databits [5|6|7|8].")
	flag.StringVar(&defaultConfig.Parity, "parity", defaultConfig.Parity, "Parity [Even|Mark|None|Odd|Space].")
	flag.StringVar(&defaultConfig.StopBits, "stopbits", defaultConfig.StopBits, "Stopbits [One|OnePointFive|Two].")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the configured serial device.
func (c *Config) Open() (io.ReadWriteCloser, error) {
	if c.Device == "" {
		return nil, fmt.Errorf("serial device not specified")
	}
	parity, err := parityFromName(c.Parity)
	if err != nil {
		return nil, err
	}
	stopBits, err := stopBitsFromName(c.StopBits)
	if err != nil {
		return nil, err
	}
	mode := &serial.Mode{
		BaudRate: c.Baud,
		DataBits: c.DataBits,
		Parity:   parity,
		StopBits: stopBits,
	}
	return serial.Open(c.Device, mode)
}

func parityFromName(name string) (serial.Parity, error) {
	switch name {
	case "None", "":
		return serial.NoParity, nil
	case "Odd":
		return serial.OddParity, nil
	case "Even":
		return serial.EvenParity, nil
	case "Mark":
		return serial.MarkParity, nil
	case "Space":
		return serial.SpaceParity, nil
	}
	return serial.NoParity, fmt.Errorf("invalid parity: %s", name)
}

func stopBitsFromName(name string) (serial.StopBits, error) {
	switch name {
	case "One", "":
		return serial.OneStopBit, nil
	case "OnePointFive":
		return serial.OnePointFiveStopBits, nil
	case "Two":
		return serial.TwoStopBits, nil
	}
	return serial.OneStopBit, fmt.Errorf("invalid stopbits: %s", name)
}
