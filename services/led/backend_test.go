//go:build !tinygo

package led

import (
	"errors"
	"sort"
	"testing"

	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"
)

func TestBackends_HostRegistry(t *testing.T) {
	got := Backends()
	sort.Strings(got)
	want := []string{types.BackendBitBang, types.BackendLog}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Backends() = %v, want %v", got, want)
		}
	}
}

func TestNewBackend_DefaultsToPlatform(t *testing.T) {
	cfg, _ := types.LEDConfigFrom(map[string]any{})
	b, err := NewBackend(cfg, nil)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if b.Name() != platform.DefaultBackend {
		t.Fatalf("backend = %q, want %q", b.Name(), platform.DefaultBackend)
	}
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := NewBackend(types.LEDConfig{Backend: "rmt"}, nil)
	if errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("err = %v, want unsupported", err)
	}
}

func TestBitBang_ClocksOneFramePerWrite(t *testing.T) {
	pins := platform.DefaultPinFactory().(*platform.HostPinFactory)
	b, err := NewBackend(types.LEDConfig{Backend: types.BackendBitBang, Pin: 4}, pins)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	d := NewDriver(b, DriverConfig{})
	if err := d.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	p, ok := pins.Get(4)
	if !ok || !p.IsOutput() {
		t.Fatal("pin 4 not configured as output")
	}
	// Initialize wrote "off": 24 bits, each starting with a rising edge.
	if p.Rises() != 24 {
		t.Fatalf("rises after init = %d, want 24", p.Rises())
	}

	d.SetMode(types.ModeAttack)
	d.Tick(0, SettingsFunc(func() bool { return true }))
	if p.Rises() != 48 {
		t.Fatalf("rises after tick = %d, want 48", p.Rises())
	}
	if p.Get() {
		t.Fatal("line must idle low after a frame")
	}
}

func TestBitBang_UnknownPinFailsInit(t *testing.T) {
	b, err := NewBackend(types.LEDConfig{Backend: types.BackendBitBang, Pin: 99}, nil)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	err = NewDriver(b, DriverConfig{}).Initialize()
	if errcode.Of(err) != errcode.BackendInit || !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("err = %v, want backend_init wrapping unknown_pin", err)
	}
}

func TestWriteErrLog_Transitions(t *testing.T) {
	l := writeErrLog{name: "pixel"}
	steps := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("bus fault"), true},
		{errors.New("bus fault"), true},
		{nil, false},
	}
	for i, s := range steps {
		l.note(s.err)
		if l.failing != s.want {
			t.Fatalf("step %d: failing = %v, want %v", i, l.failing, s.want)
		}
	}
}
