// Package console is a line-oriented serial shell for the status LED.
// Commands are turned into bus messages; the LED service does the work.
package console

import (
	"context"
	"io"
	"strings"
	"time"

	"statusled-go/bus"
	"statusled-go/errcode"
	"statusled-go/services/config"
	"statusled-go/services/led"
	"statusled-go/types"
	"statusled-go/x/strconvx"

	"github.com/google/shlex"
)

// Port is the serial line the console reads from and answers on.
type Port interface {
	Write(p []byte) (int, error)
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

const (
	maxLine  = 128
	prompt   = "> "
	readPoll = 250 * time.Millisecond
)

const helpText = "commands:\r\n" +
	"  mode <name>       off|rainbow|attack|sniff|probe_detect|deauth|beacon|custom\r\n" +
	"  color <r> <g> <b> manual colour (switches to custom)\r\n" +
	"  enable on|off     EnableLED setting\r\n" +
	"  status            current LED state\r\n" +
	"  help\r\n"

type Console struct {
	port     Port
	conn     *bus.Connection
	stateSub *bus.Subscription

	state    types.LEDState
	hasState bool
}

// New binds a console to a port and a bus connection. It starts following
// led/state immediately so "status" has an answer.
func New(port Port, conn *bus.Connection) *Console {
	return &Console{port: port, conn: conn, stateSub: conn.Subscribe(led.TopicState)}
}

// Run reads lines until ctx is done. CR is ignored, LF ends a line, and
// overlong lines are truncated. A port that can be closed is closed on exit.
func (c *Console) Run(ctx context.Context) {
	defer c.conn.Unsubscribe(c.stateSub)
	if cl, ok := c.port.(io.Closer); ok {
		defer cl.Close()
	}

	c.writeString(prompt)

	buf := make([]byte, 32)
	line := make([]byte, 0, maxLine)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		// Bound the blocking wait so shutdown is noticed.
		rctx, cancel := context.WithTimeout(ctx, readPoll)
		n, _ := c.port.RecvSomeContext(rctx, buf)
		cancel()

		for i := 0; i < n; i++ {
			switch b := buf[i]; b {
			case '\n':
				c.writeString(c.Exec(string(line)))
				c.writeString(prompt)
				line = line[:0]
			case '\r':
			default:
				if len(line) < maxLine {
					line = append(line, b)
				}
			}
		}
	}
}

func (c *Console) drainState() {
	for {
		select {
		case m, ok := <-c.stateSub.Channel():
			if !ok {
				return
			}
			if st, ok := m.Payload.(types.LEDState); ok {
				c.state, c.hasState = st, true
			}
		default:
			return
		}
	}
}

// Exec runs one command line and returns the reply text.
func (c *Console) Exec(line string) string {
	c.drainState()
	args, err := shlex.Split(line)
	if err != nil {
		return "error: " + err.Error() + "\r\n"
	}
	if len(args) == 0 {
		return ""
	}
	reply, err := c.exec(strings.ToLower(args[0]), args[1:])
	if err != nil {
		return "error: " + string(errcode.Of(err)) + "\r\n"
	}
	if reply == "" {
		return "ok\r\n"
	}
	return reply
}

// exec returns a reply for informational commands, "" for controls.
func (c *Console) exec(cmd string, args []string) (string, error) {
	switch cmd {
	case "mode":
		if len(args) != 1 {
			return "", errcode.InvalidParams
		}
		m, err := types.ParseMode(strings.ToLower(args[0]))
		if err != nil {
			return "", err
		}
		c.publish(led.ControlTopic("mode"), types.LEDSetMode{Mode: m}, false)
		return "", nil
	case "color", "colour":
		if len(args) != 3 {
			return "", errcode.InvalidParams
		}
		var v [3]int
		for i, a := range args {
			n, err := strconvx.Atoi(a)
			if err != nil {
				return "", errcode.InvalidParams
			}
			v[i] = n
		}
		c.publish(led.ControlTopic("color"), types.LEDSetColor{R: v[0], G: v[1], B: v[2]}, false)
		return "", nil
	case "enable":
		if len(args) != 1 {
			return "", errcode.InvalidParams
		}
		var on bool
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			on = true
		case "off", "false", "0":
		default:
			return "", errcode.InvalidParams
		}
		c.publish(config.SettingTopic(config.KeyEnableLED), on, true)
		return "", nil
	case "status":
		return c.statusLine(), nil
	case "help", "?":
		return helpText, nil
	default:
		return "", errcode.Unsupported
	}
}

func (c *Console) publish(t bus.Topic, payload any, retained bool) {
	c.conn.Publish(c.conn.NewMessage(t, payload, retained))
}

func (c *Console) statusLine() string {
	if !c.hasState {
		return "status: unknown\r\n"
	}
	st := c.state
	en := "off"
	if st.Enabled {
		en = "on"
	}
	return "mode=" + st.Mode +
		" rgb=" + strconvx.Itoa(int(st.Color.R)) + "," + strconvx.Itoa(int(st.Color.G)) + "," + strconvx.Itoa(int(st.Color.B)) +
		" enabled=" + en +
		" backend=" + st.Backend + "\r\n"
}

func (c *Console) writeString(s string) {
	if s == "" {
		return
	}
	_, _ = c.port.Write([]byte(s))
}
