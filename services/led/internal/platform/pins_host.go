//go:build !(rp2040 || rp2350 || esp32c3)

package platform

import (
	"sync"

	"statusled-go/types"
)

// DefaultBackend on host builds prints colours instead of driving hardware.
const DefaultBackend = types.BackendLog

const DefaultPin = 16

// FakePin implements GPIOPin for host-side tests and simulation. It counts
// rising edges so tests can check that a frame was clocked out.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	modeOut bool
	rises   int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	if level && !p.level {
		p.rises++
	}
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether ConfigureOutput was called.
func (p *FakePin) IsOutput() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modeOut
}

// Rises returns the number of low-to-high transitions seen.
func (p *FakePin) Rises() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rises
}

// HostPinFactory returns stable *FakePin instances per number. Numbers
// outside 0..MaxPin are rejected like on hardware.
type HostPinFactory struct {
	MaxPin int

	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (GPIOPin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n < 0 || n > f.MaxPin {
		return nil, false
	}
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory shaped like an RP2040.
func DefaultPinFactory() PinFactory { return &HostPinFactory{MaxPin: 28} }
