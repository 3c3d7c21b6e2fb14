//go:build !tinygo

package ws2812bb

import "time"

// SpinDelay on host builds sleeps; it exists so the bit-bang backend can run
// in simulation. One loop is one nanosecond.
type SpinDelay struct{}

func NewSpinDelay() *SpinDelay { return &SpinDelay{} }

func (*SpinDelay) Loops(ns uint32) uint32 { return ns }

func (*SpinDelay) Spin(n uint32) {
	if n >= 1000 {
		time.Sleep(time.Duration(n))
	}
}
