package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"

	fx "github.com/marinerobo/rov.go/pkg/framework"
	"github.com/marinerobo/rov.go/pkg/relay"
	"github.com/marinerobo/rov.go/pkg/relay/mqtt"
	"github.com/marinerobo/rov.go/pkg/sio"
)

var (
	mqttURL   = "mqtt://localhost:1883/rov/"
	vehicleID string
)

func init() {
	if val := os.Getenv("ROV_MQTT_URL"); val != "" {
		mqttURL = val
	}
	vehicleID = relay.StationID()
	sio.SetupFlags()
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&vehicleID, "id", vehicleID, "Vehicle ID used in topics.")
}

func main() {
	flag.Parse()

	port, err := sio.NewConfig().Open()
	if err != nil {
		log.Fatalln(err)
	}
	defer port.Close()

	queue, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer queue.Close()

	runner := fx.NewRunner().HandleSignals()
	runner.Go(relay.New(port, queue, vehicleID))
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
