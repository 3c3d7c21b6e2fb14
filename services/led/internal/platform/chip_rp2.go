//go:build rp2040 || rp2350

package platform

import "statusled-go/types"

// User GPIOs GP0..GP28.
const gpioMax = 28

// DefaultBackend drives the pixel from a PIO state machine.
const DefaultBackend = types.BackendPeripheral

// DefaultPin is the on-board pixel on RP2040-Zero style boards.
const DefaultPin = 16
