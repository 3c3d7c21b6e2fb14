//go:build tinygo

package ws2812bb

import (
	"device"
	"machine"
)

// SpinDelay busy-waits on the CPU clock. It is calibrated once from
// machine.CPUFrequency().
type SpinDelay struct {
	cpuHz uint32
}

func NewSpinDelay() *SpinDelay { return &SpinDelay{cpuHz: machine.CPUFrequency()} }

func (s *SpinDelay) Loops(ns uint32) uint32 { return spinLoops(ns, s.cpuHz) }

func (s *SpinDelay) Spin(n uint32) {
	for ; n > 0; n-- {
		device.Asm("nop")
	}
}
