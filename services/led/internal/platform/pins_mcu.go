//go:build rp2040 || rp2350 || esp32c3

package platform

import "machine"

// DefaultPinFactory maps logical numbers directly to machine.Pin(n).
func DefaultPinFactory() PinFactory { return mcuPinFactory{} }

// MachinePin validates n against the chip's GPIO range.
func MachinePin(n int) (machine.Pin, bool) {
	if n < 0 || n > gpioMax {
		return machine.NoPin, false
	}
	return machine.Pin(n), true
}

type mcuPinFactory struct{}

func (mcuPinFactory) ByNumber(n int) (GPIOPin, bool) {
	p, ok := MachinePin(n)
	if !ok {
		return nil, false
	}
	return &mcuPin{p: p, n: n}, true
}

type mcuPin struct {
	p machine.Pin
	n int
}

func (r *mcuPin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *mcuPin) Set(level bool) { r.p.Set(level) }
func (r *mcuPin) Get() bool      { return r.p.Get() }
func (r *mcuPin) Number() int    { return r.n }

// Machine is the bare pin, for loops where the wrapper's call costs time.
func (r *mcuPin) Machine() machine.Pin { return r.p }
