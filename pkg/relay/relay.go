// Package relay bridges the vehicle's telemetry stream from the
// surface-side serial port to an MQTT broker.
package relay

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/denisbrodbeck/machineid"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	fx "github.com/marinerobo/rov.go/pkg/framework"
	"github.com/marinerobo/rov.go/pkg/telemetry"
)

// Publisher is the outbound side of the message queue. Satisfied by
// *mqtt.Queue.
type Publisher interface {
	Pub(topic string, payload []byte) paho.Token
}

// Topic suffixes under rov/<id>/.
const (
	TopicTelemetry = "telemetry"
	TopicLog       = "log"
)

// StationID identifies this surface station to the broker. Falls
// back to the hostname when the machine ID is unavailable.
func StationID() string {
	if id, err := machineid.ID(); err == nil {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// Relay reads outbound frames from the serial channel and
// republishes them. Telemetry frames go to rov/<id>/telemetry;
// diagnostics and anything non-telemetry go to rov/<id>/log.
type Relay struct {
	Port      io.Reader
	Queue     Publisher
	VehicleID string
}

// New creates a Relay.
func New(port io.Reader, queue Publisher, vehicleID string) *Relay {
	return &Relay{Port: port, Queue: queue, VehicleID: vehicleID}
}

// Name implements Named.
func (r *Relay) Name() string {
	return "telemetry-relay"
}

// Topic builds a full topic for this vehicle.
func (r *Relay) Topic(suffix string) string {
	return "rov/" + r.VehicleID + "/" + suffix
}

// Run implements Runnable. It returns when the port closes or the
// context is canceled. Cancellation closes the port when it is a
// Closer, which unblocks the scanner's pending Read.
func (r *Relay) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.Port)
	scan := func() error {
		for scanner.Scan() {
			r.publish(scanner.Bytes())
		}
		return scanner.Err()
	}
	if closer, ok := r.Port.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, scan)
	}
	return fx.RunWithContextCancel(ctx, nil, scan)
}

func (r *Relay) publish(line []byte) {
	if len(line) == 0 {
		return
	}
	frame, err := telemetry.DecodeFrame(line)
	if err != nil || len(frame.AxisInfo) == 0 {
		glog.V(1).Infof("log line: %s", line)
		r.Queue.Pub(r.Topic(TopicLog), append([]byte(nil), line...))
		return
	}
	// Re-encode so consumers only ever see complete frames.
	encoded, err := json.Marshal(frame)
	if err != nil {
		glog.Errorf("re-encode failed: %v", err)
		return
	}
	r.Queue.Pub(r.Topic(TopicTelemetry), encoded)
}
