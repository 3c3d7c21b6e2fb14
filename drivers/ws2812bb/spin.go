package ws2812bb

import "statusled-go/x/timex"

const (
	// loopCycles is the cost of one spin iteration (nop, decrement, branch)
	// on Cortex-M0+ and RISC-V cores.
	loopCycles = 3

	// edgeOverheadCycles is paid on every edge outside the spin loop: the
	// Spin and Pin.Set dispatches plus the GPIO register write.
	edgeOverheadCycles = 20
)

// spinLoops returns the spin count that, added to the per-edge overhead,
// covers ns at cpuHz. Pulses shorter than the overhead get no spin at all.
func spinLoops(ns, cpuHz uint32) uint32 {
	c := timex.CyclesFor(ns, cpuHz)
	if c <= edgeOverheadCycles {
		return 0
	}
	return (c - edgeOverheadCycles) / loopCycles
}
