//go:build rp2040 || rp2350

package led

import (
	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

func init() { RegisterBackend(types.BackendPeripheral, BuilderFunc(buildPeripheral)) }

// peripheral hands frames to a PIO state machine, which generates the bit
// timing in hardware; no critical section is needed.
type peripheral struct {
	pinN int
	ws   *piolib.WS2812B
}

func buildPeripheral(in BuildInput) (Backend, error) {
	return &peripheral{pinN: in.Config.Pin}, nil
}

func (p *peripheral) Name() string { return types.BackendPeripheral }

func (p *peripheral) Init() error {
	pin, ok := platform.MachinePin(p.pinN)
	if !ok {
		return errcode.UnknownPin
	}
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return err
	}
	p.ws = ws
	return nil
}

func (p *peripheral) Write(c types.Color) {
	if p.ws == nil {
		return
	}
	p.ws.PutRGB(c.R, c.G, c.B)
}
