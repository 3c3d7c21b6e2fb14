package config

import (
	"context"
	"testing"
	"time"

	"statusled-go/bus"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestSettings_DefaultsAndTypes(t *testing.T) {
	s := NewSettings()
	if !s.LEDEnabled() {
		t.Fatal("LED should default to enabled")
	}
	s.Set(KeyEnableLED, "no")
	if !s.LEDEnabled() {
		t.Fatal("mistyped value should fall back to default")
	}
	s.Set(KeyEnableLED, false)
	if s.LEDEnabled() {
		t.Fatal("expected disabled")
	}
}

func TestSettings_FollowsBus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(8)
	cfgConn := b.NewConnection("config")
	s := NewSettings()

	cfgConn.Publish(cfgConn.NewMessage(topicConfigSettings, map[string]any{KeyEnableLED: false}, true))
	s.Start(ctx, b.NewConnection("settings"))

	waitFor(t, func() bool { return !s.LEDEnabled() })

	cfgConn.Publish(cfgConn.NewMessage(SettingTopic(KeyEnableLED), true, false))
	waitFor(t, func() bool { return s.LEDEnabled() })
}
