package vehicle

import (
	"flag"
	"time"

	"github.com/marinerobo/rov.go/pkg/telemetry"
	"github.com/marinerobo/rov.go/pkg/wire"
)

// Config holds the tunables of the thruster controller.
type Config struct {
	// BufferCapacity bounds a single inbound frame.
	BufferCapacity int
	// ArmDelay is the one-time hold-at-neutral before the loop
	// starts accepting frames.
	ArmDelay time.Duration
	// Interval is the loop tick interval.
	Interval time.Duration

	ADCFullScale     int
	ADCRefMillivolts float64
}

var defaultConfig = Config{
	BufferCapacity:   wire.DefaultCapacity,
	ArmDelay:         3 * time.Second,
	Interval:         20 * time.Millisecond,
	ADCFullScale:     telemetry.DefaultFullScale,
	ADCRefMillivolts: telemetry.DefaultRefMillivolts,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.BufferCapacity, "frame-buffer", defaultConfig.BufferCapacity, "Inbound frame buffer capacity (bytes).")
	flag.DurationVar(&defaultConfig.ArmDelay, "arm-delay", defaultConfig.ArmDelay, "Hold-at-neutral duration before accepting commands.")
	flag.DurationVar(&defaultConfig.Interval, "tick", defaultConfig.Interval, "Control loop tick interval.")
	flag.IntVar(&defaultConfig.ADCFullScale, "adc-full-scale", defaultConfig.ADCFullScale, "ADC full-scale value.")
	flag.Float64Var(&defaultConfig.ADCRefMillivolts, "adc-ref-mv", defaultConfig.ADCRefMillivolts, "ADC full-scale reading at the sensor tap (mV).")
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
