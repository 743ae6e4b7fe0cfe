package timing

import (
	"log/slog"
	"time"

	"github.com/aretw0/toolbelt/internal/logging"
	"github.com/aretw0/toolbelt/pkg/ports"
)

// Kind identifies the wrapper that produced an Event.
type Kind string

const (
	KindDebounce Kind = "debounce"
	KindThrottle Kind = "throttle"
	KindFrame    Kind = "frame"
)

// Drop reasons reported in Event.Reason.
const (
	ReasonWindow = "window"
	ReasonGate   = "gate"
)

// Event describes a single scheduling decision of a wrapper.
type Event struct {
	Kind Kind
	Name string
	// Delay is the wait applied when the call was scheduled.
	Delay time.Duration
	// Latency is the time between scheduling and firing (OnFire only).
	Latency time.Duration
	// Reason explains an OnDrop event.
	Reason string
}

// Hooks observe wrapper activity. Nil hooks are skipped.
// Hooks run synchronously on the calling or timer goroutine and must not block.
type Hooks struct {
	OnSchedule func(Event)
	OnCancel   func(Event)
	OnFire     func(Event)
	OnDrop     func(Event)
}

// Option configures a wrapper.
type Option func(*settings)

type settings struct {
	name     string
	logger   *slog.Logger
	hooks    Hooks
	trailing bool
	gate     ports.Gate
	gateKey  string
	gateWait time.Duration
	frames   FrameScheduler
}

func newSettings(kind Kind, opts []Option) settings {
	s := settings{
		name:     string(kind),
		logger:   logging.NewNop(),
		trailing: true,
		gateWait: time.Second,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithName labels the wrapper in hook events and log lines.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithLogger configures a logger for dropped calls and gate failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithTrailing controls whether Throttle delivers a call that arrives mid-window once
// the window closes (default true). With false such calls are dropped.
func WithTrailing(trailing bool) Option {
	return func(s *settings) {
		s.trailing = trailing
	}
}

// WithGate makes Throttle ask gate for admission under key before every fire.
// Denied calls are dropped. If the gate errors the call still fires.
func WithGate(gate ports.Gate, key string) Option {
	return func(s *settings) {
		s.gate = gate
		s.gateKey = key
	}
}

// WithGateTimeout bounds each gate round-trip (default 1s).
func WithGateTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.gateWait = d
		}
	}
}

// WithFrameScheduler sets the frame source used by ThrottleFrame.
func WithFrameScheduler(frames FrameScheduler) Option {
	return func(s *settings) {
		s.frames = frames
	}
}

func (s *settings) event(kind Kind, delay time.Duration) Event {
	return Event{Kind: kind, Name: s.name, Delay: delay}
}

func (s *settings) emit(hook func(Event), ev Event) {
	if hook != nil {
		hook(ev)
	}
}
