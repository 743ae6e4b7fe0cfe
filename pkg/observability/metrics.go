package observability

import (
	"context"
	"time"

	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/timing"
	"github.com/prometheus/client_golang/prometheus"
)

// Timing event labels.
const (
	EventScheduled = "scheduled"
	EventCancelled = "cancelled"
	EventFired     = "fired"
	EventDropped   = "dropped"
)

// Metrics holds the toolbelt collectors.
type Metrics struct {
	timingEvents  *prometheus.CounterVec
	timingLatency *prometheus.HistogramVec
	toolCalls     *prometheus.CounterVec
	toolDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		timingEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbelt_timing_events_total",
				Help: "Scheduling decisions of debounce, throttle and frame wrappers",
			},
			[]string{"kind", "name", "event", "reason"},
		),
		timingLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "toolbelt_timing_fire_latency_seconds",
				Help:    "Time between scheduling and running a wrapped callback",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"kind", "name"},
		),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolbelt_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"tool", "status"},
		),
		toolDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "toolbelt_tool_duration_seconds",
				Help: "Duration of tool executions",
			},
			[]string{"tool"},
		),
	}

	for _, c := range []prometheus.Collector{m.timingEvents, m.timingLatency, m.toolCalls, m.toolDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns timing hooks that record every event.
func (m *Metrics) Hooks() timing.Hooks {
	count := func(event string) func(timing.Event) {
		return func(ev timing.Event) {
			m.timingEvents.WithLabelValues(string(ev.Kind), ev.Name, event, ev.Reason).Inc()
		}
	}
	fired := count(EventFired)

	return timing.Hooks{
		OnSchedule: count(EventScheduled),
		OnCancel:   count(EventCancelled),
		OnDrop:     count(EventDropped),
		OnFire: func(ev timing.Event) {
			fired(ev)
			m.timingLatency.WithLabelValues(string(ev.Kind), ev.Name).Observe(ev.Latency.Seconds())
		},
	}
}

// Instrument re-registers every tool in reg wrapped with call counting and timing.
// Tools registered afterwards are not instrumented.
func (m *Metrics) Instrument(reg *registry.Registry) {
	for _, tool := range reg.List() {
		_ = reg.Register(m.Wrap(tool))
	}
}

// Wrap returns tool with its function instrumented.
func (m *Metrics) Wrap(tool registry.Tool) registry.Tool {
	fn := tool.Fn
	tool.Fn = func(ctx context.Context, args map[string]any) (any, error) {
		start := time.Now()
		out, err := fn(ctx, args)
		m.toolDuration.WithLabelValues(tool.Name).Observe(time.Since(start).Seconds())

		status := "ok"
		if err != nil {
			status = "error"
		}
		m.toolCalls.WithLabelValues(tool.Name, status).Inc()
		return out, err
	}
	return tool
}
