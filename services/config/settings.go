package config

import (
	"context"
	"sync"

	"statusled-go/bus"
)

// KeyEnableLED is the setting that gates the status LED.
const KeyEnableLED = "EnableLED"

var (
	topicConfigSettings = bus.T(configPrefix, "settings")
	topicSettingSetAny  = bus.T("settings", "set", "+")
)

// SettingTopic is where a single-key update for key is published.
func SettingTopic(key string) bus.Topic { return bus.T("settings", "set", key) }

// Settings is a read-mostly view of device settings fed from the bus. Values
// are looked up on every call; nothing is cached by readers.
type Settings struct {
	mu   sync.RWMutex
	vals map[string]any
}

func NewSettings() *Settings {
	return &Settings{vals: make(map[string]any)}
}

func (s *Settings) Set(key string, v any) {
	s.mu.Lock()
	s.vals[key] = v
	s.mu.Unlock()
}

// Bool returns the setting as a bool, or def when missing or mistyped.
func (s *Settings) Bool(key string, def bool) bool {
	s.mu.RLock()
	v, ok := s.vals[key]
	s.mu.RUnlock()
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// LEDEnabled reports the EnableLED setting (default on).
func (s *Settings) LEDEnabled() bool { return s.Bool(KeyEnableLED, true) }

func (s *Settings) apply(msg *bus.Message) {
	switch {
	case msg.Topic.Len() == 2: // config/settings
		if m, ok := msg.Payload.(map[string]any); ok {
			for k, v := range m {
				s.Set(k, v)
			}
		}
	case msg.Topic.Len() == 3: // settings/set/<key>
		if k, ok := msg.Topic.At(2).(string); ok {
			s.Set(k, msg.Payload)
		}
	}
}

func (s *Settings) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigSettings)
	setSub := conn.Subscribe(topicSettingSetAny)
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(setSub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-cfgSub.Channel():
			s.apply(msg)
		case msg := <-setSub.Channel():
			s.apply(msg)
		}
	}
}

// Start follows config/settings and settings/set/+ until ctx is done.
func (s *Settings) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}
