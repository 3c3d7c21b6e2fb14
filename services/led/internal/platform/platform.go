// Package platform supplies GPIO pins and the default LED backend for the
// build target.
package platform

// GPIOPin is the subset of a GPIO the LED backends need.
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by board GPIO number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}
