package relay

import (
	"bytes"
	"context"
	"io"
	"testing"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published map[string][]string
}

func (p *fakePublisher) Pub(topic string, payload []byte) paho.Token {
	if p.published == nil {
		p.published = make(map[string][]string)
	}
	p.published[topic] = append(p.published[topic], string(payload))
	return &paho.DummyToken{}
}

func TestRelayRoutesFrames(t *testing.T) {
	input := `{"temp":25,"volt":0.25,"axisInfo":[1500,1300,1700,1500,1400,1600]}` + "\n" +
		`{"error":"decode: malformed payload"}` + "\n" +
		"not json at all\n"
	pub := &fakePublisher{}
	r := New(bytes.NewBufferString(input), pub, "abc")

	require.NoError(t, r.Run(context.Background()))

	require.Len(t, pub.published["rov/abc/telemetry"], 1)
	require.Contains(t, pub.published["rov/abc/telemetry"][0], `"axisInfo":[1500,1300,1700,1500,1400,1600]`)
	require.Len(t, pub.published["rov/abc/log"], 2)
}

type signalPublisher struct {
	fakePublisher
	got chan struct{}
}

func (p *signalPublisher) Pub(topic string, payload []byte) paho.Token {
	token := p.fakePublisher.Pub(topic, payload)
	p.got <- struct{}{}
	return token
}

func TestRelayCancelClosesPort(t *testing.T) {
	pr, pw := io.Pipe()
	pub := &signalPublisher{got: make(chan struct{}, 1)}
	r := New(pr, pub, "abc")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	_, err := pw.Write([]byte(`{"temp":25,"volt":0.25,"axisInfo":[1500,1500,1500,1500,1500,1500]}` + "\n"))
	require.NoError(t, err)
	<-pub.got

	// Cancellation closes the pipe, unblocking the pending Read.
	cancel()
	require.Equal(t, context.Canceled, <-done)
	require.Len(t, pub.published["rov/abc/telemetry"], 1)
}

func TestRelayTopic(t *testing.T) {
	r := New(nil, nil, "abc")
	require.Equal(t, "rov/abc/telemetry", r.Topic(TopicTelemetry))
	require.Equal(t, "rov/abc/log", r.Topic(TopicLog))
}

func TestStationID(t *testing.T) {
	require.NotEmpty(t, StationID())
}
