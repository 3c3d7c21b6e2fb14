//go:build rp2040 || rp2350 || esp32c3

package led

import (
	"machine"

	"statusled-go/drivers/ws2812bb"
	"statusled-go/services/led/internal/platform"
)

// edgePin hands the encoder the bare machine.Pin when there is one, so each
// edge costs a single dispatch.
func edgePin(p platform.GPIOPin) ws2812bb.Pin {
	if m, ok := p.(interface{ Machine() machine.Pin }); ok {
		return m.Machine()
	}
	return p
}
