// Package ws2812bb drives a single WS2812-class pixel by toggling a GPIO
// with software timing. Each byte goes out MSB first; a 1-bit is a long
// high then short low, a 0-bit is a short high then long low. The whole
// frame is emitted with interrupts disabled because the part discriminates
// bits on a tolerance of a few hundred nanoseconds.
package ws2812bb

// Pin is the output line. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
}

// Delayer busy-waits without yielding. Loops converts nanoseconds into the
// unit Spin counts; the Device converts its timing once so no arithmetic
// runs between edges.
type Delayer interface {
	Loops(ns uint32) uint32
	Spin(loops uint32)
}

// Timing holds pulse widths in nanoseconds.
type Timing struct {
	T0H, T0L uint32
	T1H, T1L uint32
	Reset    uint32 // low time after a frame so the pixel latches
}

// DefaultTiming matches the WS2812B datasheet nominal values. Reset uses the
// 280us figure required by newer revisions of the part.
var DefaultTiming = Timing{
	T0H:   400,
	T0L:   850,
	T1H:   800,
	T1L:   450,
	Reset: 280_000,
}

type Device struct {
	pin    Pin
	delay  Delayer
	timing Timing
	loops  Timing // timing in Delayer loops
}

// New returns a device on pin. The pin must already be configured as an
// output and idle low.
func New(pin Pin, d Delayer) *Device {
	dev := &Device{pin: pin, delay: d}
	dev.SetTiming(DefaultTiming)
	return dev
}

// SetTiming overrides the pulse widths (e.g. for WS2811 at 400 kHz).
func (d *Device) SetTiming(t Timing) {
	d.timing = t
	d.loops = Timing{
		T0H:   d.delay.Loops(t.T0H),
		T0L:   d.delay.Loops(t.T0L),
		T1H:   d.delay.Loops(t.T1H),
		T1L:   d.delay.Loops(t.T1L),
		Reset: d.delay.Loops(t.Reset),
	}
}

// Timing returns the active pulse widths.
func (d *Device) Timing() Timing { return d.timing }

// WriteRGB sends one pixel. The part expects green first.
func (d *Device) WriteRGB(r, g, b uint8) {
	buf := [3]byte{g, r, b}
	d.Write(buf[:])
}

// Write sends buf verbatim, in wire order, then latches. It never fails; a
// frame corrupted by the line is simply replaced by the next write.
func (d *Device) Write(buf []byte) (int, error) {
	critical(func() {
		for _, c := range buf {
			d.sendByte(c)
		}
	})
	d.pin.Set(false)
	d.delay.Spin(d.loops.Reset)
	return len(buf), nil
}

// caller holds the critical section
func (d *Device) sendByte(c byte) {
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		hi, lo := d.loops.T0H, d.loops.T0L
		if c&mask != 0 {
			hi, lo = d.loops.T1H, d.loops.T1L
		}
		d.pin.Set(true)
		d.delay.Spin(hi)
		d.pin.Set(false)
		d.delay.Spin(lo)
	}
}
