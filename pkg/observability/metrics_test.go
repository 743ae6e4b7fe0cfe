package observability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/toolbelt/pkg/observability"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/timing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_TimingHooks(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	loop := timing.NewFrameLoop(0, nil)
	ft := timing.ThrottleFrame(func(int) {},
		timing.WithName("render"),
		timing.WithFrameScheduler(loop),
		timing.WithHooks(m.Hooks()),
	)
	ft.Call(1)
	ft.Cancel()
	ft.Call(2)
	loop.Step()

	assert.Equal(t, map[string]float64{
		observability.EventScheduled: 2,
		observability.EventCancelled: 1,
		observability.EventFired:     1,
	}, counters(t, reg, "toolbelt_timing_events_total", "event"))
	n, err := testutil.GatherAndCount(reg, "toolbelt_timing_fire_latency_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// counters sums a counter family by the value of one label.
func counters(t *testing.T, reg prometheus.Gatherer, name, label string) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label {
					out[lp.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return out
}

func TestMetrics_Instrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	tools := registry.NewRegistry()
	require.NoError(t, tools.Register(registry.Tool{
		Name: "ok",
		Fn:   func(context.Context, map[string]any) (any, error) { return 1, nil },
	}))
	require.NoError(t, tools.Register(registry.Tool{
		Name: "fail",
		Fn:   func(context.Context, map[string]any) (any, error) { return nil, errors.New("boom") },
	}))
	m.Instrument(tools)

	ctx := context.Background()
	out, err := tools.Execute(ctx, "ok", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, out)
	_, _ = tools.Execute(ctx, "ok", nil)
	_, err = tools.Execute(ctx, "fail", nil)
	assert.EqualError(t, err, "boom")

	assert.Equal(t, map[string]float64{"ok": 2, "fail": 1}, counters(t, reg, "toolbelt_tool_calls_total", "tool"))
	assert.Equal(t, map[string]float64{"ok": 2, "error": 1}, counters(t, reg, "toolbelt_tool_calls_total", "status"))
	n, err := testutil.GatherAndCount(reg, "toolbelt_tool_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_DebounceLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	d := timing.Debounce(func(string) {}, time.Millisecond, timing.WithHooks(m.Hooks()))
	d.Call("x")
	assert.Eventually(t, func() bool {
		n, err := testutil.GatherAndCount(reg, "toolbelt_timing_fire_latency_seconds")
		return err == nil && n == 1
	}, time.Second, 5*time.Millisecond)
}
