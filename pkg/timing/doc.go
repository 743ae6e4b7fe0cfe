/*
Package timing wraps callbacks with time-based call coalescing: Debounce, Throttle and
ThrottleFrame, plus Sleep.

Each wrapper owns at most one pending timer (or frame request). A call that supersedes a
pending one stops its timer, and a timer that expired concurrently is recognised as stale
and never runs the callback. Wrappers are safe for concurrent use; callbacks run on timer
goroutines, outside any lock.

Observers attach through Hooks (see pkg/observability for a Prometheus implementation):

	save := timing.Debounce(func(doc string) { store(doc) }, 300*time.Millisecond,
		timing.WithName("autosave"),
		timing.WithHooks(metrics.Hooks()),
	)
	save.Call(draft)

Throttle can additionally consult a ports.Gate, so that replicas sharing a Redis gate
fire at most once per window between them.
*/
package timing
