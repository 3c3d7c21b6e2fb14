//go:build !(rp2040 || rp2350 || esp32c3)

package led

import (
	"statusled-go/drivers/ws2812bb"
	"statusled-go/services/led/internal/platform"
)

func edgePin(p platform.GPIOPin) ws2812bb.Pin { return p }
