//go:build !tinygo

package ws2812bb

// Host builds have no interrupts to mask; the flag lets tests assert that
// every bit was emitted inside the section.
var inCritical bool

func critical(f func()) {
	inCritical = true
	defer func() { inCritical = false }()
	f()
}
