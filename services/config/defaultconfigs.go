package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
//
// "led" configures the status pixel; "settings" seeds the settings store.
// A missing "backend" or negative "pin" selects the board default.
// -----------------------------------------------------------------------------

const cfgPico = `{
  "led": {
    "backend": "peripheral",
    "pin": 16,
    "tick_ms": 50,
    "wheel_step": 1,
    "mode": "rainbow"
  },
  "settings": {
    "EnableLED": true
  }
}`

const cfgESP32C3 = `{
  "led": {
    "backend": "bitbang",
    "pin": 8,
    "tick_ms": 50,
    "wheel_step": 1,
    "mode": "rainbow"
  },
  "settings": {
    "EnableLED": true
  }
}`

const cfgHost = `{
  "led": {
    "backend": "log",
    "tick_ms": 250,
    "wheel_step": 16,
    "mode": "rainbow"
  },
  "settings": {
    "EnableLED": true
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico":    []byte(cfgPico),
	"esp32c3": []byte(cfgESP32C3),
	"host":    []byte(cfgHost),
}
