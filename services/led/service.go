package led

import (
	"context"
	"time"

	"statusled-go/bus"
	"statusled-go/errcode"
	"statusled-go/services/led/internal/platform"
	"statusled-go/types"
	"statusled-go/x/timex"
)

var (
	topicConfigLED = bus.T("config", "led")
	topicControl   = bus.T("led", "control", "+")
	TopicState     = bus.T("led", "state")
	TopicReply     = bus.T("led", "reply")
)

// ControlTopic is where a control for method is published
// ("mode", "color").
func ControlTopic(method string) bus.Topic { return bus.T("led", "control", method) }

// configWait bounds how long Run waits for a retained config/led before
// falling back to defaults.
const configWait = 2 * time.Second

// Service runs the driver's tick loop and accepts mode/colour controls from
// the bus. It is the driver's only caller.
type Service struct {
	drv      *Driver
	settings Settings
	tick     time.Duration

	lastState types.LEDState
	published bool
}

func NewService(drv *Driver, s Settings, tick time.Duration) *Service {
	if tick <= 0 {
		tick = types.DefaultTickMs * time.Millisecond
	}
	return &Service{drv: drv, settings: s, tick: tick}
}

// Driver exposes the underlying driver for callers that own the service
// goroutine (tests, single-loop firmware).
func (s *Service) Driver() *Driver { return s.drv }

// Run waits for config/led, builds the backend, initialises the driver and
// then serves until ctx is done. Controls published while it waits are
// queued and applied once the loop starts. A backend initialisation error
// is returned before the loop starts; the caller should treat it as fatal.
func Run(ctx context.Context, conn *bus.Connection, settings Settings, pins platform.PinFactory) error {
	subs := subscribe(conn)

	cfg, ok := awaitConfig(ctx, subs.cfg)
	if !ok {
		subs.close(conn)
		return nil
	}

	backend, err := NewBackend(cfg, pins)
	if err != nil {
		subs.close(conn)
		return err
	}
	drv := NewDriver(backend, DriverConfig{WheelStep: cfg.WheelStep})
	if err := drv.Initialize(); err != nil {
		subs.close(conn)
		return err
	}
	if cfg.Mode != "" {
		if m, err := types.ParseMode(cfg.Mode); err == nil {
			drv.SetMode(m)
		} else {
			println("Error: led: initial mode", cfg.Mode, err.Error())
		}
	}
	println("Info: led: backend", drv.BackendName(), "mode", drv.Mode().String())

	svc := NewService(drv, settings, time.Duration(cfg.TickMs)*time.Millisecond)
	svc.serviceLoop(ctx, conn, subs)
	return nil
}

type subscriptions struct {
	ctl, cfg *bus.Subscription
}

// subscribe registers for controls and config before anything can publish
// them; controls are not retained.
func subscribe(conn *bus.Connection) subscriptions {
	return subscriptions{
		ctl: conn.Subscribe(topicControl),
		cfg: conn.Subscribe(topicConfigLED),
	}
}

func (s subscriptions) close(conn *bus.Connection) {
	conn.Unsubscribe(s.ctl)
	conn.Unsubscribe(s.cfg)
}

// awaitConfig returns the retained config/led, or defaults after configWait.
// ok is false when ctx ended first.
func awaitConfig(ctx context.Context, sub *bus.Subscription) (types.LEDConfig, bool) {
	if ctx.Err() != nil {
		return types.LEDConfig{}, false
	}

	t := time.NewTimer(configWait)
	defer t.Stop()

	select {
	case msg := <-sub.Channel():
		cfg, ok := types.LEDConfigFrom(msg.Payload)
		if !ok {
			println("Error: led: config/led is not an object, using defaults")
		}
		return cfg, true
	case <-t.C:
		println("Info: led: no config/led, using defaults")
	case <-ctx.Done():
		return types.LEDConfig{}, false
	}
	cfg, _ := types.LEDConfigFrom(nil)
	return cfg, true
}

// Start subscribes and runs the loop for an already initialised driver.
// Controls published after Start returns are never lost.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	subs := subscribe(conn)
	go s.serviceLoop(ctx, conn, subs)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, subs subscriptions) {
	defer subs.close(conn)

	tick := time.NewTicker(s.tick)
	defer tick.Stop()

	s.publishState(conn)

	for {
		select {
		case <-ctx.Done():
			println("Info: led service stopping")
			return
		case <-tick.C:
			s.drv.Tick(timex.NowMs(), s.settings)
			s.publishState(conn)
		case msg := <-subs.ctl.Channel():
			if err := s.handleControl(msg); err != nil {
				conn.Publish(conn.NewMessage(TopicReply, types.LEDReply{OK: false, Error: string(errcode.Of(err))}, false))
				continue
			}
			s.publishState(conn)
		case msg := <-subs.cfg.Channel():
			// Only timing may change at runtime; the backend is fixed.
			cfg, ok := types.LEDConfigFrom(msg.Payload)
			if !ok {
				continue
			}
			if d := time.Duration(cfg.TickMs) * time.Millisecond; d > 0 && d != s.tick {
				s.tick = d
				tick.Reset(d)
			}
			if cfg.WheelStep > 0 {
				s.drv.wheelStep = cfg.WheelStep
			}
		}
	}
}

func (s *Service) handleControl(msg *bus.Message) error {
	method, _ := msg.Topic.At(msg.Topic.Len() - 1).(string)
	switch method {
	case "mode":
		m, err := modeFrom(msg.Payload)
		if err != nil {
			return err
		}
		s.drv.SetMode(m)
		return nil
	case "color":
		c, ok := colorFrom(msg.Payload)
		if !ok {
			return errcode.InvalidPayload
		}
		// Manual colour: park the state machine in Custom so the next tick
		// leaves the pixel alone.
		s.drv.SetMode(types.ModeCustom)
		s.drv.SetColor(c.R, c.G, c.B)
		return nil
	default:
		return errcode.Unsupported
	}
}

func modeFrom(p any) (types.Mode, error) {
	switch v := p.(type) {
	case types.LEDSetMode:
		if !v.Mode.Valid() {
			return types.ModeOff, errcode.UnknownMode
		}
		return v.Mode, nil
	case types.Mode:
		if !v.Valid() {
			return types.ModeOff, errcode.UnknownMode
		}
		return v, nil
	case string:
		return types.ParseMode(v)
	case map[string]any:
		if name, ok := v["mode"].(string); ok {
			return types.ParseMode(name)
		}
	}
	return types.ModeOff, errcode.InvalidPayload
}

func colorFrom(p any) (types.LEDSetColor, bool) {
	switch v := p.(type) {
	case types.LEDSetColor:
		return v, true
	case types.Color:
		return types.LEDSetColor{R: int(v.R), G: int(v.G), B: int(v.B)}, true
	case map[string]any:
		var c types.LEDSetColor
		r, ok1 := v["r"].(float64)
		g, ok2 := v["g"].(float64)
		b, ok3 := v["b"].(float64)
		if !(ok1 && ok2 && ok3) {
			return c, false
		}
		return types.LEDSetColor{R: int(r), G: int(g), B: int(b)}, true
	}
	return types.LEDSetColor{}, false
}

// publishState emits a retained led/state when mode, colour or the enable
// switch changed since the last publish.
func (s *Service) publishState(conn *bus.Connection) {
	st := types.LEDState{
		Mode:    s.drv.Mode().String(),
		Color:   s.drv.LastColor(),
		Enabled: s.settings.LEDEnabled(),
		Backend: s.drv.BackendName(),
	}
	if s.published && st == s.lastState {
		return
	}
	s.lastState, s.published = st, true
	st.TS = timex.NowMs()
	conn.Publish(conn.NewMessage(TopicState, st, true))
}
