package operator

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/marinerobo/rov.go/pkg/thruster"
)

const shellKey = "$console"

var evalOnly bool

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// Console is the ishell-backed operator console.
type Console struct {
	Interactive bool

	Shell  *ishell.Shell
	Client *Client
}

// NewConsole creates a console over a connected client.
func NewConsole(client *Client) *Console {
	c := &Console{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Client:      client,
	}
	c.Shell.Set(shellKey, c)
	c.Shell.SetPrompt("rov > ")
	for _, cmd := range commands {
		c.Shell.AddCmd(cmd)
	}
	return c
}

// Main runs the console: interactive by default, or evaluates the
// remaining command line arguments with -e.
func (c *Console) Main() {
	if c.Interactive {
		c.Shell.Println("ROV operator console. Type 'help' for commands.")
		c.Shell.Run()
		return
	}
	if err := c.Shell.Process(flag.Args()...); err != nil {
		fmt.Println(err)
	}
}

func consoleFrom(c *ishell.Context) *Console {
	return c.Get(shellKey).(*Console)
}

var commands = []*ishell.Cmd{
	{
		Name: "set",
		Help: "set fwdBack left right ascDesc pitchL pitchR (pulse widths in µs)",
		Func: func(c *ishell.Context) {
			if len(c.Args) != thruster.AxisCount {
				c.Err(fmt.Errorf("want %d axis values, got %d", thruster.AxisCount, len(c.Args)))
				return
			}
			var frame thruster.CommandFrame
			for i, arg := range c.Args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					c.Err(fmt.Errorf("axis %d: %v", i, err))
					return
				}
				frame[i] = thruster.PulseWidth(v)
			}
			if err := consoleFrom(c).Client.Send(frame); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "neutral",
		Help: "command all axes to rest",
		Func: func(c *ishell.Context) {
			if err := consoleFrom(c).Client.SendNeutral(); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "raw",
		Help: "raw <payload>: send an arbitrary frame payload",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("want exactly one payload argument"))
				return
			}
			if err := consoleFrom(c).Client.SendRaw([]byte(c.Args[0])); err != nil {
				c.Err(err)
			}
		},
	},
	{
		Name: "watch",
		Help: "watch [n]: print the next n telemetry frames (default 1)",
		Func: func(c *ishell.Context) {
			n := 1
			if len(c.Args) > 0 {
				v, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				n = v
			}
			client := consoleFrom(c).Client
			for i := 0; i < n; i++ {
				line, err := client.ReadLine()
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(line))
			}
		},
	},
}
