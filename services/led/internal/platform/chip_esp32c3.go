//go:build esp32c3

package platform

import "statusled-go/types"

const gpioMax = 21

// No RMT support in the machine package here; fall back to software timing.
const DefaultBackend = types.BackendBitBang

// DefaultPin is the on-board pixel on ESP32-C3 DevKitM boards.
const DefaultPin = 8
