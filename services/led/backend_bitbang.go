package led

import (
	"statusled-go/drivers/ws2812bb"
	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"
)

func init() { RegisterBackend(types.BackendBitBang, BuilderFunc(buildBitBang)) }

// bitBang clocks the pixel protocol out of a plain GPIO in software.
type bitBang struct {
	pinN int
	pins platform.PinFactory
	dev  *ws2812bb.Device
}

func buildBitBang(in BuildInput) (Backend, error) {
	return &bitBang{pinN: in.Config.Pin, pins: in.Pins}, nil
}

func (b *bitBang) Name() string { return types.BackendBitBang }

func (b *bitBang) Init() error {
	pin, ok := b.pins.ByNumber(b.pinN)
	if !ok {
		return errcode.UnknownPin
	}
	if err := pin.ConfigureOutput(false); err != nil {
		return err
	}
	b.dev = ws2812bb.New(edgePin(pin), ws2812bb.NewSpinDelay())
	return nil
}

func (b *bitBang) Write(c types.Color) {
	if b.dev == nil {
		return
	}
	b.dev.WriteRGB(c.R, c.G, c.B)
}
