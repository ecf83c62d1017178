// Package telemetry converts raw sensor samples and serializes the
// outbound telemetry frames.
package telemetry

// ADC default transfer parameters: 10-bit converter, 5 V reference.
// RefMillivolts is the full-scale reading expressed in millivolts at
// the sensor tap (the divider ahead of the pin scales 5 V to 500 mV).
const (
	DefaultFullScale     = 1024
	DefaultRefMillivolts = 500.0

	// millivoltsPerDegree is the sensor transfer slope (10 mV/°C).
	millivoltsPerDegree = 10.0
)

// ADC converts raw analog samples to physical units through a linear
// transfer function.
type ADC struct {
	FullScale     int
	RefMillivolts float64
}

// DefaultADC returns the converter used by the stock sensor wiring.
func DefaultADC() ADC {
	return ADC{FullScale: DefaultFullScale, RefMillivolts: DefaultRefMillivolts}
}

// Sample is one converted analog reading. It is transient and
// recomputed every cycle.
type Sample struct {
	Millivolts float64
	Celsius    float64
}

// Convert applies the linear transfer function to a raw sample.
func (a ADC) Convert(raw int) Sample {
	fullScale := a.FullScale
	if fullScale <= 0 {
		fullScale = DefaultFullScale
	}
	ref := a.RefMillivolts
	if ref == 0 {
		ref = DefaultRefMillivolts
	}
	mv := float64(raw) / float64(fullScale) * ref
	return Sample{
		Millivolts: mv,
		Celsius:    mv / millivoltsPerDegree,
	}
}

// AnalogSampler reads the raw analog sensor. It is an external
// collaborator: the real implementation wraps the ADC hardware.
type AnalogSampler interface {
	ReadSample() (int, error)
}

// SamplerFunc is the func form of AnalogSampler.
type SamplerFunc func() (int, error)

// ReadSample implements AnalogSampler.
func (f SamplerFunc) ReadSample() (int, error) {
	return f()
}

// FixedSampler returns an AnalogSampler that always reads the same
// raw value. Useful for bench runs without sensor hardware.
func FixedSampler(raw int) AnalogSampler {
	return SamplerFunc(func() (int, error) {
		return raw, nil
	})
}
