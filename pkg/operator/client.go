// Package operator provides the surface-station side of the serial
// protocol: sending command frames and reading telemetry back.
package operator

import (
	"bufio"
	"io"
	"time"

	"github.com/marinerobo/rov.go/pkg/telemetry"
	"github.com/marinerobo/rov.go/pkg/thruster"
	"github.com/marinerobo/rov.go/pkg/wire"
)

// Client talks to the vehicle over the serial channel.
type Client struct {
	// MinSendInterval throttles command writes so the vehicle's
	// frame buffer is never flooded between ticks.
	MinSendInterval time.Duration

	rw       io.ReadWriter
	reader   *bufio.Reader
	lastSend time.Time
}

// NewClient wraps a serial channel.
func NewClient(rw io.ReadWriter) *Client {
	return &Client{
		MinSendInterval: 100 * time.Millisecond,
		rw:              rw,
		reader:          bufio.NewReader(rw),
	}
}

// Send encodes and writes one command frame.
func (c *Client) Send(frame thruster.CommandFrame) error {
	encoded, err := wire.EncodeCommand(frame)
	if err != nil {
		return err
	}
	return c.sendRaw(encoded)
}

// SendRaw writes an arbitrary payload followed by the frame
// terminator. Used to exercise the vehicle's decode error paths.
func (c *Client) SendRaw(payload []byte) error {
	return c.sendRaw(append(append([]byte(nil), payload...), wire.Terminator))
}

// SendNeutral commands all axes to rest.
func (c *Client) SendNeutral() error {
	return c.Send(thruster.NeutralCommand())
}

func (c *Client) sendRaw(frame []byte) error {
	if wait := c.MinSendInterval - time.Since(c.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	_, err := c.rw.Write(frame)
	c.lastSend = time.Now()
	return err
}

// ReadLine reads one outbound frame line from the vehicle.
func (c *Client) ReadLine() ([]byte, error) {
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	return line[:len(line)-1], nil
}

// ReadFrame reads and decodes one telemetry frame.
func (c *Client) ReadFrame() (telemetry.Frame, error) {
	line, err := c.ReadLine()
	if err != nil {
		return telemetry.Frame{}, err
	}
	return telemetry.DecodeFrame(line)
}
