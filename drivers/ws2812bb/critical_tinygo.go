//go:build tinygo

package ws2812bb

import "runtime/interrupt"

func critical(f func()) {
	state := interrupt.Disable()
	f()
	interrupt.Restore(state)
}
