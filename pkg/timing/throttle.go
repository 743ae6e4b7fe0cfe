package timing

import (
	"context"
	"sync"
	"time"
)

// Throttler limits fn to one execution per delay window.
type Throttler[T any] struct {
	fn    func(T)
	delay time.Duration
	cfg   settings

	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	lastCall time.Time
}

// Throttle returns a Throttler for fn.
//
// Every call computes the remaining window as lastCall + delay - now and clears the
// pending call. When the window is over, or trailing delivery is enabled (the default),
// fn is scheduled with the new argument after the remaining wait; otherwise the call is
// dropped.
func Throttle[T any](fn func(T), delay time.Duration, opts ...Option) *Throttler[T] {
	return &Throttler[T]{
		fn:    fn,
		delay: delay,
		cfg:   newSettings(KindThrottle, opts),
	}
}

// Call offers v to the throttled function.
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()
	wait := time.Duration(-1)
	if !t.lastCall.IsZero() {
		wait = time.Until(t.lastCall.Add(t.delay))
	}
	superseded := t.stopLocked()

	scheduled := wait <= 0 || t.cfg.trailing
	if scheduled {
		wait = max(wait, 0)
		t.gen++
		gen := t.gen
		scheduledAt := time.Now()
		t.timer = time.AfterFunc(wait, func() { t.fire(gen, v, wait, scheduledAt) })
	}
	t.mu.Unlock()

	ev := t.cfg.event(KindThrottle, max(wait, 0))
	if superseded {
		t.cfg.emit(t.cfg.hooks.OnCancel, ev)
	}
	if scheduled {
		t.cfg.emit(t.cfg.hooks.OnSchedule, ev)
		return
	}

	ev.Reason = ReasonWindow
	t.cfg.logger.Debug("throttled call dropped", "name", t.cfg.name, "remaining", wait)
	t.cfg.emit(t.cfg.hooks.OnDrop, ev)
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (t *Throttler[T]) Cancel() bool {
	t.mu.Lock()
	cancelled := t.stopLocked()
	t.mu.Unlock()

	if cancelled {
		t.cfg.emit(t.cfg.hooks.OnCancel, t.cfg.event(KindThrottle, 0))
	}
	return cancelled
}

// Pending reports whether a call is waiting to fire.
func (t *Throttler[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

func (t *Throttler[T]) stopLocked() bool {
	if t.timer == nil {
		return false
	}
	t.timer.Stop()
	t.timer = nil
	t.gen++
	return true
}

func (t *Throttler[T]) fire(gen uint64, v T, wait time.Duration, scheduledAt time.Time) {
	t.mu.Lock()
	if gen != t.gen || t.timer == nil {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	// The window starts now, before fn runs, so a call racing with fn is measured
	// against this execution.
	t.lastCall = time.Now()
	t.mu.Unlock()

	ev := t.cfg.event(KindThrottle, wait)
	if t.cfg.gate != nil && !t.admit(&ev) {
		t.cfg.emit(t.cfg.hooks.OnDrop, ev)
		return
	}

	t.fn(v)

	ev.Latency = time.Since(scheduledAt)
	t.cfg.emit(t.cfg.hooks.OnFire, ev)
}

// admit asks the gate for the current window. Gate failures fail open.
func (t *Throttler[T]) admit(ev *Event) bool {
	ctx, cancel := context.WithTimeout(context.Background(), t.cfg.gateWait)
	defer cancel()

	ok, err := t.cfg.gate.Allow(ctx, t.cfg.gateKey, t.delay)
	if err != nil {
		t.cfg.logger.Warn("throttle gate unavailable, firing locally",
			"name", t.cfg.name,
			"key", t.cfg.gateKey,
			"err", err,
		)
		return true
	}
	if !ok {
		ev.Reason = ReasonGate
		t.cfg.logger.Debug("throttled call denied by gate", "name", t.cfg.name, "key", t.cfg.gateKey)
	}
	return ok
}
