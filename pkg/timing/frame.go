package timing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/toolbelt/internal/logging"
)

// DefaultFrameRate is the frame interval used when none is configured (60 FPS).
const DefaultFrameRate = 16667 * time.Microsecond

// ErrLoopRunning is returned when a FrameLoop is started twice.
var ErrLoopRunning = errors.New("frame loop already running")

// FrameID identifies a frame request so it can be cancelled.
type FrameID uint64

// FrameScheduler runs callbacks on the next frame, in the manner of requestAnimationFrame.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// TimerFrames is a FrameScheduler that runs each request one frame interval after it
// was made, on its own timer.
type TimerFrames struct {
	rate time.Duration

	mu     sync.Mutex
	next   FrameID
	timers map[FrameID]*time.Timer
}

// NewTimerFrames creates a timer-backed scheduler. A non-positive rate selects DefaultFrameRate.
func NewTimerFrames(rate time.Duration) *TimerFrames {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return &TimerFrames{
		rate:   rate,
		timers: make(map[FrameID]*time.Timer),
	}
}

// RequestFrame schedules fn for the next frame.
func (f *TimerFrames) RequestFrame(fn func()) FrameID {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	id := f.next
	f.timers[id] = time.AfterFunc(f.rate, func() {
		f.mu.Lock()
		_, live := f.timers[id]
		delete(f.timers, id)
		f.mu.Unlock()
		if live {
			fn()
		}
	})
	return id
}

// CancelFrame aborts a pending request. Unknown or already fired IDs are ignored.
func (f *TimerFrames) CancelFrame(id FrameID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.timers[id]; ok {
		t.Stop()
		delete(f.timers, id)
	}
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameLoop is a shared frame clock. Callbacks requested before a frame run together on
// that frame, in request order; callbacks requested while a frame runs wait for the next.
// Frames are produced by a ticker after Start, or by the host calling Step.
type FrameLoop struct {
	rate   time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	next    FrameID
	queue   []frameRequest
	frame   uint64
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewFrameLoop creates a stopped loop. A non-positive rate selects DefaultFrameRate.
func NewFrameLoop(rate time.Duration, logger *slog.Logger) *FrameLoop {
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FrameLoop{rate: rate, logger: logger}
}

// RequestFrame queues fn for the next frame.
func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	l.queue = append(l.queue, frameRequest{id: l.next, fn: fn})
	return l.next
}

// CancelFrame removes a queued request.
func (l *FrameLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, req := range l.queue {
		if req.id == id {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}

// Step runs one frame synchronously and returns the number of callbacks it ran.
// A panicking callback is logged and does not stop the rest of the frame.
func (l *FrameLoop) Step() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.frame++
	frame := l.frame
	l.mu.Unlock()

	for _, req := range batch {
		l.run(frame, req)
	}
	return len(batch)
}

func (l *FrameLoop) run(frame uint64, req frameRequest) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("frame callback panicked", "frame", frame, "request", req.id, "panic", fmt.Sprint(r))
		}
	}()
	req.fn()
}

// Frame returns the number of frames run so far.
func (l *FrameLoop) Frame() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// Start runs frames on a ticker until ctx is done or Stop is called.
func (l *FrameLoop) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.cancel != nil {
		l.mu.Unlock()
		return ErrLoopRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	l.cancel, l.stopped = cancel, stopped
	l.mu.Unlock()

	ticker := time.NewTicker(l.rate)
	go func() {
		defer close(stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Step()
			}
		}
	}()
	return nil
}

// Stop halts the ticker and waits for the current frame to finish.
// Pending requests stay queued and run on the next Step or Start.
func (l *FrameLoop) Stop() {
	l.mu.Lock()
	cancel, stopped := l.cancel, l.stopped
	l.cancel, l.stopped = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

// FrameThrottler coalesces calls so fn runs at most once per frame, with the latest argument.
type FrameThrottler[T any] struct {
	fn     func(T)
	cfg    settings
	frames FrameScheduler

	mu          sync.Mutex
	pending     bool
	id          FrameID
	gen         uint64
	arg         T
	scheduledAt time.Time
}

// ThrottleFrame returns a FrameThrottler for fn. Frames come from WithFrameScheduler,
// or from a TimerFrames at DefaultFrameRate.
func ThrottleFrame[T any](fn func(T), opts ...Option) *FrameThrottler[T] {
	cfg := newSettings(KindFrame, opts)
	frames := cfg.frames
	if frames == nil {
		frames = NewTimerFrames(DefaultFrameRate)
	}
	return &FrameThrottler[T]{fn: fn, cfg: cfg, frames: frames}
}

// Call records v and requests a frame unless one is already pending.
func (f *FrameThrottler[T]) Call(v T) {
	f.mu.Lock()
	f.arg = v
	if f.pending {
		f.mu.Unlock()
		return
	}
	f.pending = true
	f.gen++
	gen := f.gen
	f.scheduledAt = time.Now()
	f.mu.Unlock()

	f.cfg.emit(f.cfg.hooks.OnSchedule, f.cfg.event(KindFrame, 0))

	// The scheduler may run the callback inline, so it is called without f.mu held.
	id := f.frames.RequestFrame(func() { f.fire(gen) })

	f.mu.Lock()
	stale := f.gen != gen
	if !stale && f.pending {
		f.id = id
	}
	f.mu.Unlock()
	if stale {
		f.frames.CancelFrame(id)
	}
}

// Cancel aborts the pending frame request and reports whether there was one.
func (f *FrameThrottler[T]) Cancel() bool {
	f.mu.Lock()
	if !f.pending {
		f.mu.Unlock()
		return false
	}
	f.frames.CancelFrame(f.id)
	f.pending = false
	f.gen++
	var zero T
	f.arg = zero
	f.mu.Unlock()

	f.cfg.emit(f.cfg.hooks.OnCancel, f.cfg.event(KindFrame, 0))
	return true
}

// Pending reports whether a frame request is outstanding.
func (f *FrameThrottler[T]) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

func (f *FrameThrottler[T]) fire(gen uint64) {
	f.mu.Lock()
	if !f.pending || gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.pending = false
	arg, scheduledAt := f.arg, f.scheduledAt
	var zero T
	f.arg = zero
	f.mu.Unlock()

	f.fn(arg)

	ev := f.cfg.event(KindFrame, 0)
	ev.Latency = time.Since(scheduledAt)
	f.cfg.emit(f.cfg.hooks.OnFire, ev)
}
