package operator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marinerobo/rov.go/pkg/thruster"
	"github.com/marinerobo/rov.go/pkg/wire"
)

type fakePort struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func (p *fakePort) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *fakePort) Write(b []byte) (int, error) { return p.out.Write(b) }

func newFakePort(telemetryLines string) *fakePort {
	return &fakePort{
		in:  bytes.NewBufferString(telemetryLines),
		out: &bytes.Buffer{},
	}
}

func TestClientSend(t *testing.T) {
	port := newFakePort("")
	client := NewClient(port)
	client.MinSendInterval = 0

	require.NoError(t, client.Send(thruster.CommandFrame{1800, 1300, 1700, 1200, 1400, 1600}))
	sent := port.out.Bytes()
	require.Equal(t, wire.Terminator, sent[len(sent)-1])
	require.Equal(t,
		`{"axisInfo":[1800,1300,1700,1200,1400,1600]}`,
		string(sent[:len(sent)-1]))
}

func TestClientSendNeutral(t *testing.T) {
	port := newFakePort("")
	client := NewClient(port)
	client.MinSendInterval = 0

	require.NoError(t, client.SendNeutral())
	require.Contains(t, port.out.String(), `[1500,1500,1500,1500,1500,1500]`)
}

func TestClientSendRaw(t *testing.T) {
	port := newFakePort("")
	client := NewClient(port)
	client.MinSendInterval = 0

	require.NoError(t, client.SendRaw([]byte(`{"broken"`)))
	require.Equal(t, append([]byte(`{"broken"`), wire.Terminator), port.out.Bytes())
}

func TestClientReadFrame(t *testing.T) {
	port := newFakePort(`{"temp":25,"volt":0.25,"axisInfo":[1500,1300,1700,1500,1400,1600]}` + "\n")
	client := NewClient(port)

	frame, err := client.ReadFrame()
	require.NoError(t, err)
	require.InDelta(t, 25.0, frame.Temp, 0.001)
	require.InDelta(t, 0.25, frame.Volt, 0.001)
	require.Equal(t, []int{1500, 1300, 1700, 1500, 1400, 1600}, frame.AxisInfo)
}
