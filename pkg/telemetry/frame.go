package telemetry

import (
	"encoding/json"
	"io"

	"github.com/marinerobo/rov.go/pkg/thruster"
)

// Frame is the outbound telemetry payload: the converted sensor
// reading plus an echo of the most recent command's axis intents.
// Serialized as JSON followed by a line break.
type Frame struct {
	Temp     float64 `json:"temp"`
	Volt     float64 `json:"volt"`
	AxisInfo []int   `json:"axisInfo"`
}

// Diagnostic is an error report emitted on the telemetry channel in
// place of actuation when a frame cannot be decoded.
type Diagnostic struct {
	Error string `json:"error"`
}

// Encoder builds and writes telemetry frames.
type Encoder struct {
	W   io.Writer
	ADC ADC
}

// NewEncoder creates an Encoder with the default converter.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{W: w, ADC: DefaultADC()}
}

// Encode converts a raw analog sample, combines it with the command
// echo and writes one telemetry frame.
func (e *Encoder) Encode(raw int, echo thruster.CommandFrame) error {
	sample := e.ADC.Convert(raw)
	return e.write(Frame{
		Temp:     sample.Celsius,
		Volt:     sample.Millivolts / 1000,
		AxisInfo: echo.AxisInfo(),
	})
}

// EncodeDiagnostic writes an error report frame.
func (e *Encoder) EncodeDiagnostic(err error) error {
	return e.write(Diagnostic{Error: err.Error()})
}

func (e *Encoder) write(v interface{}) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = e.W.Write(append(encoded, '\n'))
	return err
}

// DecodeFrame parses one outbound line back into a Frame. Used by
// the operator-side tools.
func DecodeFrame(line []byte) (Frame, error) {
	var f Frame
	err := json.Unmarshal(line, &f)
	return f, err
}
