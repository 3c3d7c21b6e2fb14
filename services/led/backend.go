package led

import (
	"sync"

	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"
	"statusled-go/x/strx"
)

// Backend physically emits a colour to the pixel. Exactly one is active per
// device; it is chosen once at startup and never swapped.
type Backend interface {
	Name() string
	Init() error
	Write(c types.Color) // GRB wire order is the backend's concern
}

// writeErrLog reports a backend's write errors on transitions only, so a
// failing pixel logs once rather than every tick.
type writeErrLog struct {
	name    string
	failing bool
}

func (l *writeErrLog) note(err error) {
	switch {
	case err != nil && !l.failing:
		l.failing = true
		println("Error: led:", l.name, "write:", err.Error())
	case err == nil && l.failing:
		l.failing = false
		println("Info: led:", l.name, "write recovered")
	}
}

// BuildInput is passed to a backend builder.
type BuildInput struct {
	Config types.LEDConfig
	Pins   platform.PinFactory
}

type Builder interface {
	Build(in BuildInput) (Backend, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(in BuildInput) (Backend, error)

func (f BuilderFunc) Build(in BuildInput) (Backend, error) { return f(in) }

var (
	regMu    sync.RWMutex
	builders = map[string]Builder{}
)

// RegisterBackend makes a backend available by name. Platform files call it
// from init for the backends their target supports.
func RegisterBackend(name string, b Builder) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := builders[name]; exists {
		panic("duplicate led backend: " + name)
	}
	builders[name] = b
}

func lookupBackend(name string) (Builder, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	b, ok := builders[name]
	return b, ok
}

// Backends lists the names registered for this build.
func Backends() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(builders))
	for n := range builders {
		out = append(out, n)
	}
	return out
}

// NewBackend resolves platform defaults in cfg and builds the named backend.
func NewBackend(cfg types.LEDConfig, pins platform.PinFactory) (Backend, error) {
	cfg = withPlatformDefaults(cfg)
	b, ok := lookupBackend(cfg.Backend)
	if !ok {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "led.NewBackend", Msg: cfg.Backend}
	}
	if pins == nil {
		pins = platform.DefaultPinFactory()
	}
	return b.Build(BuildInput{Config: cfg, Pins: pins})
}

func withPlatformDefaults(cfg types.LEDConfig) types.LEDConfig {
	cfg.Backend = strx.Coalesce(cfg.Backend, platform.DefaultBackend)
	if cfg.Pin < 0 {
		cfg.Pin = platform.DefaultPin
	}
	return cfg
}
