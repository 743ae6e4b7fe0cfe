/*
Package observability exports toolbelt activity as Prometheus metrics.

Timing wrappers report through the hooks returned by Metrics.Hooks, and registry tools
are counted and timed once Metrics.Instrument has wrapped them:

	m, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	m.Instrument(reg)
	save := timing.Debounce(store, time.Second, timing.WithName("autosave"), timing.WithHooks(m.Hooks()))
*/
package observability
