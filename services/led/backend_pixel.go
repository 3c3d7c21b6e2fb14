//go:build rp2040 || rp2350 || esp32c3

package led

import (
	"image/color"
	"machine"

	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"

	"tinygo.org/x/drivers/ws2812"
)

func init() { RegisterBackend(types.BackendPixel, BuilderFunc(buildPixel)) }

// pixel uses the TinyGo ws2812 driver, which emits GRB itself.
type pixel struct {
	pinN       int
	brightness uint8
	dev        ws2812.Device
	ready      bool
	errs       writeErrLog
	buf        [1]color.RGBA
}

func buildPixel(in BuildInput) (Backend, error) {
	lvl := in.Config.Brightness
	if lvl <= 0 || lvl > 255 {
		lvl = types.DefaultBrightness
	}
	return &pixel{pinN: in.Config.Pin, brightness: uint8(lvl)}, nil
}

func (p *pixel) Name() string { return types.BackendPixel }

func (p *pixel) Init() error {
	pin, ok := platform.MachinePin(p.pinN)
	if !ok {
		return errcode.UnknownPin
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.dev = ws2812.New(pin)
	p.ready = true
	p.errs.name = types.BackendPixel
	return nil
}

func (p *pixel) Write(c types.Color) {
	if !p.ready {
		return
	}
	s := c.Scale(p.brightness)
	p.buf[0] = color.RGBA{R: s.R, G: s.G, B: s.B, A: 255}
	// The driver masks interrupts for the frame itself.
	p.errs.note(p.dev.WriteColors(p.buf[:]))
}
