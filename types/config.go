package types

// LED configuration supplied on topic "config/led". Whether the LED is
// enabled at all is a device setting, not part of this block.

// Backend names accepted in LEDConfig.Backend.
const (
	BackendPixel      = "pixel"      // vendor pixel library (tinygo drivers/ws2812)
	BackendPeripheral = "peripheral" // dedicated peripheral (RP2 PIO)
	BackendBitBang    = "bitbang"    // software bit-bang on a GPIO
	BackendLog        = "log"        // host simulation
)

type LEDConfig struct {
	Backend    string `json:"backend"`
	Pin        int    `json:"pin"` // <0 selects the board default
	TickMs     int    `json:"tick_ms"`
	WheelStep  int    `json:"wheel_step"`
	Brightness int    `json:"brightness"` // 0..255, applied by the pixel backend
	Mode       string `json:"mode,omitempty"`
}

// Defaults used when a key is missing from the device config. The pixel
// library runs at 50/255 unless told otherwise.
const (
	DefaultTickMs     = 50
	DefaultWheelStep  = 1
	DefaultBrightness = 50
)

// LEDConfigFrom decodes a generic JSON object (map[string]any as produced by
// the config service) into an LEDConfig, filling defaults.
func LEDConfigFrom(v any) (LEDConfig, bool) {
	c := LEDConfig{
		Pin:        -1,
		TickMs:     DefaultTickMs,
		WheelStep:  DefaultWheelStep,
		Brightness: DefaultBrightness,
	}
	m, ok := v.(map[string]any)
	if !ok {
		return c, false
	}
	if s, ok := m["backend"].(string); ok {
		c.Backend = s
	}
	if s, ok := m["mode"].(string); ok {
		c.Mode = s
	}
	num := func(key string, dst *int) {
		if f, ok := m[key].(float64); ok {
			*dst = int(f)
		}
	}
	num("pin", &c.Pin)
	num("tick_ms", &c.TickMs)
	num("wheel_step", &c.WheelStep)
	num("brightness", &c.Brightness)
	return c, true
}
