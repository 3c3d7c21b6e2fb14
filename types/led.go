package types

// ------------------------
// LED controls (topic led/control/<method>)
// ------------------------

type LEDSetMode struct {
	Mode Mode `json:"mode"`
}

// LEDSetColor switches the LED to manual colour control. Channels outside
// 0..255 are clamped by the driver.
type LEDSetColor struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ------------------------
// LED state (retained, topic led/state)
// ------------------------

type LEDState struct {
	Mode    string `json:"mode"`
	Color   Color  `json:"color"`
	Enabled bool   `json:"enabled"`
	Backend string `json:"backend"`
	TS      int64  `json:"ts_ms"`
}

type LEDReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
