package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/marinerobo/rov.go/pkg/operator"
	"github.com/marinerobo/rov.go/pkg/sio"
)

func init() {
	sio.SetupFlags()
}

func main() {
	flag.Parse()

	port, err := sio.NewConfig().Open()
	if err != nil {
		log.Fatalln(err)
	}
	defer port.Close()

	operator.NewConsole(operator.NewClient(port)).Main()
}
