package wire

import (
	"bytes"
	"encoding/json"

	"github.com/marinerobo/rov.go/pkg/thruster"
)

// commandEnvelope defers axisInfo decoding so a missing key can be
// told apart from a key holding the wrong type.
type commandEnvelope struct {
	AxisInfo json.RawMessage `json:"axisInfo"`
}

// DecodeCommand parses an assembled frame into a CommandFrame. No
// range validation happens here; out-of-range intents are clamped by
// the mapper.
func DecodeCommand(data []byte) (thruster.CommandFrame, error) {
	var frame thruster.CommandFrame
	var env commandEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return frame, decodeErr(MalformedPayload, "%v", err)
	}
	if env.AxisInfo == nil {
		return frame, &DecodeError{Reason: MissingField, Detail: "axisInfo"}
	}
	if bytes.Equal(bytes.TrimSpace(env.AxisInfo), []byte("null")) {
		return frame, decodeErr(TypeMismatch, "axisInfo is null")
	}
	var axes []int
	if err := json.Unmarshal(env.AxisInfo, &axes); err != nil {
		return frame, decodeErr(TypeMismatch, "%v", err)
	}
	if len(axes) != thruster.AxisCount {
		return frame, decodeErr(BadAxisCount, "want %d values, got %d",
			thruster.AxisCount, len(axes))
	}
	for i, v := range axes {
		frame[i] = thruster.PulseWidth(v)
	}
	return frame, nil
}

// EncodeCommand serializes a CommandFrame into an inbound wire frame
// including the terminator. It is the surface-station side of
// DecodeCommand, used by the operator tools.
func EncodeCommand(frame thruster.CommandFrame) ([]byte, error) {
	payload, err := json.Marshal(struct {
		AxisInfo []int `json:"axisInfo"`
	}{AxisInfo: frame.AxisInfo()})
	if err != nil {
		return nil, err
	}
	return append(payload, Terminator), nil
}
