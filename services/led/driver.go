// Package led renders device status on a single addressable RGB pixel.
//
// The Driver owns the mode state machine and funnels every colour through
// one write primitive (SetColor) into a Backend chosen once at startup.
// Tick is the periodic render step and must only be called from one
// goroutine; the Service provides that goroutine when running on the bus.
package led

import (
	"time"

	"statusled-go/errcode"
	"statusled-go/types"
	"statusled-go/x/mathx"
	"statusled-go/x/timex"
)

// Settings is the external "LED enabled" switch, read on every tick.
type Settings interface {
	LEDEnabled() bool
}

// SettingsFunc adapts a plain function to Settings.
type SettingsFunc func() bool

func (f SettingsFunc) LEDEnabled() bool { return f() }

// Fixed colours per mode.
var (
	colorAttack = types.RGB(255, 0, 0)
	colorSniff  = types.RGB(0, 0, 255)
	colorDeauth = types.RGB(50, 0, 0)
	colorBeacon = types.RGB(50, 30, 0)
	colorProbe  = types.RGB(0, 50, 0)
)

const (
	probeFlash = 100 * time.Millisecond
	wheelStart = 255
)

// DriverConfig tunes a Driver. Zero values select defaults.
type DriverConfig struct {
	WheelStep int                 // rainbow decrement per tick; default 1
	Sleep     func(time.Duration) // blocking wait for the probe flash; default time.Sleep
	Now       func() int64        // ms clock; default timex.NowMs
}

type Driver struct {
	backend Backend

	mode      types.Mode
	wheelPos  int
	wheelStep int
	initMs    int64
	last      types.Color

	sleep func(time.Duration)
	now   func() int64
}

func NewDriver(b Backend, cfg DriverConfig) *Driver {
	d := &Driver{
		backend:   b,
		mode:      types.ModeOff,
		wheelPos:  wheelStart,
		wheelStep: cfg.WheelStep,
		sleep:     cfg.Sleep,
		now:       cfg.Now,
	}
	if d.wheelStep <= 0 {
		d.wheelStep = types.DefaultWheelStep
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	if d.now == nil {
		d.now = timex.NowMs
	}
	return d
}

// Initialize configures the backend and writes "off". Call it exactly once
// at startup; a returned error means the LED hardware is unusable.
func (d *Driver) Initialize() error {
	if err := d.backend.Init(); err != nil {
		return errcode.Wrap(errcode.BackendInit, d.backend.Name(), err)
	}
	d.write(types.Black)
	d.initMs = d.now()
	return nil
}

// SetColor clamps each channel to 0..255 and writes it to the LED. Every
// other LED behaviour goes through here.
func (d *Driver) SetColor(r, g, b int) {
	d.write(types.Color{R: mathx.ClampU8(r), G: mathx.ClampU8(g), B: mathx.ClampU8(b)})
}

func (d *Driver) write(c types.Color) {
	d.backend.Write(c)
	d.last = c
}

func (d *Driver) SetMode(m types.Mode) { d.mode = m }
func (d *Driver) Mode() types.Mode     { return d.mode }

// LastColor is the most recent colour handed to the backend.
func (d *Driver) LastColor() types.Color { return d.last }

// InitTimeMs is the clock reading taken by Initialize.
func (d *Driver) InitTimeMs() int64 { return d.initMs }

func (d *Driver) BackendName() string { return d.backend.Name() }

func (d *Driver) WheelPos() int { return d.wheelPos }

// SetWheelPos moves the rainbow cursor; values are clamped to 0..255.
func (d *Driver) SetWheelPos(p int) { d.wheelPos = mathx.Clamp(p, 0, wheelStart) }

// Tick renders the current mode. At most one steady colour is written per
// call; ProbeDetect writes its flash and the following "off".
func (d *Driver) Tick(nowMs int64, s Settings) {
	if !s.LEDEnabled() || d.mode == types.ModeOff {
		d.write(types.Black)
		return
	}
	d.render(d.mode)
	d.mode = nextMode(d.mode)
}

// nextMode is the only automatic transition: ProbeDetect is a one-shot
// pulse and falls back to Sniff once rendered.
func nextMode(m types.Mode) types.Mode {
	if m == types.ModeProbeDetect {
		return types.ModeSniff
	}
	return m
}

func (d *Driver) render(m types.Mode) {
	switch m {
	case types.ModeRainbow:
		d.rainbow()
	case types.ModeAttack:
		d.write(colorAttack)
	case types.ModeSniff:
		d.write(colorSniff)
	case types.ModeProbeDetect:
		d.write(colorProbe)
		d.sleep(probeFlash)
		d.write(types.Black)
	case types.ModeDeauthActive:
		d.write(colorDeauth)
	case types.ModeBeaconActive:
		d.write(colorBeacon)
	case types.ModeCustom:
		// Colour is under manual control; leave the pixel alone.
	}
}

// rainbow shows the colour at the cursor, then steps the cursor down. Going
// below zero restarts at 255.
func (d *Driver) rainbow() {
	d.write(Wheel(uint8(d.wheelPos)))
	d.wheelPos = mathx.WrapBelow(d.wheelPos-d.wheelStep, 0, wheelStart)
}

// Wheel maps a position on a 256-step colour wheel to RGB: red to blue, blue
// to green, green back to red.
func Wheel(pos uint8) types.Color {
	p := 255 - pos
	switch {
	case p < 85:
		return types.RGB(255-p*3, 0, p*3)
	case p < 170:
		p -= 85
		return types.RGB(0, p*3, 255-p*3)
	default:
		p -= 170
		return types.RGB(p*3, 255-p*3, 0)
	}
}
