/*
Package toolbelt is a collection of small, independent helpers for common scripting tasks.

Each helper group lives in its own package and can be imported on its own:

  - arrays: stepped ranges, chunking, min/max, trimmed sets, grouping, in-place replacement.
  - timing: sleep, debounce, throttle (time and frame based) and a manual frame loop.
  - color: opacity, hex and RGB conversion, nearest-colour search, OKLCH formatting.
  - numeric: clamping, percent interpolation, decimal rounding, vector magnitude and angle.
  - objpath: dotted-path lookup with defaults, typed getters, struct decoding.
  - text: initials and capitalization.
  - dates: timestamp formatting and relative time.

# Host Surface

The root package wires every stateless helper into a named tool registry so that hosts can
expose them over HTTP (pkg/adapters/http), the Model Context Protocol (pkg/adapters/mcp) or
the toolbelt CLI.

	kit, err := toolbelt.New(toolbelt.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	out, err := kit.Call(ctx, "array.chunk", map[string]any{
		"values": []any{1, 2, 3, 4, 5},
		"size":   2,
	})

Tools decode their arguments weakly (numeric strings are accepted) and reject unknown keys
with an error wrapping tools.ErrInvalidArguments.

# Observability

WithMetrics registers Prometheus collectors and instruments every tool call. Debouncers and
throttlers built with Kit.TimingOptions report their schedule and fire events to the same
collectors.
*/
package toolbelt
