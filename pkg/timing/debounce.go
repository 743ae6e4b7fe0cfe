package timing

import (
	"sync"
	"time"
)

// Debouncer delays fn until no call has been made for wait.
// Only the argument of the most recent call is delivered.
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration
	cfg  settings

	mu          sync.Mutex
	timer       *time.Timer
	gen         uint64
	arg         T
	scheduledAt time.Time
}

// Debounce returns a Debouncer for fn.
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	return &Debouncer[T]{
		fn:   fn,
		wait: wait,
		cfg:  newSettings(KindDebounce, opts),
	}
}

// Call (re)starts the quiet period with v as the pending argument.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	superseded := d.stopLocked()
	d.gen++
	gen := d.gen
	d.arg = v
	d.scheduledAt = time.Now()
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
	d.mu.Unlock()

	ev := d.cfg.event(KindDebounce, d.wait)
	if superseded {
		d.cfg.emit(d.cfg.hooks.OnCancel, ev)
	}
	d.cfg.emit(d.cfg.hooks.OnSchedule, ev)
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	cancelled := d.stopLocked()
	d.mu.Unlock()

	if cancelled {
		d.cfg.emit(d.cfg.hooks.OnCancel, d.cfg.event(KindDebounce, d.wait))
	}
	return cancelled
}

// Flush runs the pending call immediately on the calling goroutine.
// It reports whether there was a pending call.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	arg, scheduledAt := d.arg, d.scheduledAt
	d.stopLocked()
	d.mu.Unlock()

	d.run(arg, scheduledAt)
	return true
}

// Pending reports whether a call is waiting to fire.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// stopLocked stops the pending timer and invalidates its generation.
func (d *Debouncer[T]) stopLocked() bool {
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	var zero T
	d.arg = zero
	return true
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	arg, scheduledAt := d.arg, d.scheduledAt
	d.timer = nil
	var zero T
	d.arg = zero
	d.mu.Unlock()

	d.run(arg, scheduledAt)
}

func (d *Debouncer[T]) run(arg T, scheduledAt time.Time) {
	d.fn(arg)

	ev := d.cfg.event(KindDebounce, d.wait)
	ev.Latency = time.Since(scheduledAt)
	d.cfg.emit(d.cfg.hooks.OnFire, ev)
}
