package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/marinerobo/rov.go/pkg/relay"
	"github.com/marinerobo/rov.go/pkg/relay/mqtt"
	"github.com/marinerobo/rov.go/pkg/telemetry"
)

var (
	mqttURL = "mqtt://localhost:1883/rov/"
)

func init() {
	if val := os.Getenv("ROV_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	q.Sub("rov/#", mqtt.Handler(func(topic string, payload []byte) {
		if !strings.HasSuffix(topic, "/"+relay.TopicTelemetry) {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		frame, err := telemetry.DecodeFrame(payload)
		if err != nil {
			log.Printf("%s: bad frame: %v", topic, err)
			return
		}
		log.Printf("%s: temp=%.2f°C volt=%.3fV axes=%v",
			topic, frame.Temp, frame.Volt, frame.AxisInfo)
	}))
	<-(chan struct{})(nil)
}
