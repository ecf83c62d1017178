package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/golang/glog"

	fx "github.com/marinerobo/rov.go/pkg/framework"
	"github.com/marinerobo/rov.go/pkg/sio"
	"github.com/marinerobo/rov.go/pkg/telemetry"
	"github.com/marinerobo/rov.go/pkg/thruster"
	"github.com/marinerobo/rov.go/pkg/vehicle"
)

var (
	loopback  bool
	adcSample int = 512
)

func init() {
	sio.SetupFlags()
	vehicle.SetupFlags()
	flag.BoolVar(&loopback, "loopback", loopback, "Run over stdio instead of a serial device.")
	flag.IntVar(&adcSample, "adc-sample", adcSample, "Raw ADC value reported when no sensor hardware is wired.")
}

type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func main() {
	flag.Parse()

	var rw io.ReadWriter
	if loopback {
		rw = stdio{}
	} else {
		port, err := sio.NewConfig().Open()
		if err != nil {
			log.Fatalln(err)
		}
		defer port.Close()
		rw = port
	}

	// Driver and sampler are hardware collaborators; the stock build
	// logs pulse writes and reports a fixed sample.
	driver := thruster.PulseWriterFunc(func(ch thruster.Channel, p thruster.PulseWidth) error {
		glog.V(1).Infof("pulse %s=%d", ch, p)
		return nil
	})

	conf := vehicle.NewConfig()
	veh := vehicle.New(conf, rw, driver, telemetry.FixedSampler(adcSample))

	runner := fx.NewRunner().HandleSignals()
	if err := veh.Arm(runner.Context); err != nil {
		log.Fatalln(err)
	}

	loop := fx.NewLoop().Add(veh)
	loop.Interval = conf.Interval
	loop.AddIdleObserver(fx.IdleFunc(func(fx.ControlContext) {
		glog.V(3).Info("idle tick")
	}))

	runner.Go(loop)
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
