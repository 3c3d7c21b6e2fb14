package types

import "statusled-go/errcode"

// ---- LED modes ----

// Mode selects what the status LED renders on each tick.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeRainbow
	ModeAttack
	ModeSniff
	ModeProbeDetect
	ModeDeauthActive
	ModeBeaconActive
	ModeCustom
)

var modeNames = [...]string{
	ModeOff:          "off",
	ModeRainbow:      "rainbow",
	ModeAttack:       "attack",
	ModeSniff:        "sniff",
	ModeProbeDetect:  "probe_detect",
	ModeDeauthActive: "deauth",
	ModeBeaconActive: "beacon",
	ModeCustom:       "custom",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return int(m) < len(modeNames) }

// ParseMode maps a bus/console name to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return ModeOff, errcode.UnknownMode
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeNames))
	for i := range modeNames {
		out[i] = Mode(i)
	}
	return out
}

// ---- Colour ----

// Color is an RGB triple in logical (R,G,B) order. Wire order is the
// backend's concern.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB is a shorthand constructor.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// GRB returns the three bytes in WS2812 wire order.
func (c Color) GRB() [3]byte { return [3]byte{c.G, c.R, c.B} }

// Scale multiplies each channel by level/255 (level 255 is identity).
func (c Color) Scale(level uint8) Color {
	if level == 255 {
		return c
	}
	s := func(v uint8) uint8 { return uint8((uint16(v) * uint16(level)) / 255) }
	return Color{R: s(c.R), G: s(c.G), B: s(c.B)}
}

// Black is the "off" colour.
var Black = Color{}
