package toolbelt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/toolbelt/internal/logging"
	"github.com/aretw0/toolbelt/pkg/dates"
	"github.com/aretw0/toolbelt/pkg/observability"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/aretw0/toolbelt/pkg/timing"
	"github.com/aretw0/toolbelt/pkg/tools"
	"github.com/prometheus/client_golang/prometheus"
)

// Kit is the high-level entry point for hosts that want the helpers as named tools.
// It holds the tool registry together with the logger and optional metrics.
type Kit struct {
	registry   *registry.Registry
	logger     *slog.Logger
	metrics    *observability.Metrics
	palettes   ports.PaletteSource
	dates      *dates.Formatter
	registerer prometheus.Registerer
}

// Option defines a functional option for configuring the Kit.
type Option func(*Kit)

// WithLogger sets a custom structured logger for the kit and its tools.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		k.logger = logger
	}
}

// WithPalettes lets color.nearest resolve named palettes from src.
func WithPalettes(src ports.PaletteSource) Option {
	return func(k *Kit) {
		k.palettes = src
	}
}

// WithDates sets the formatter used by the date tools.
func WithDates(f *dates.Formatter) Option {
	return func(k *Kit) {
		k.dates = f
	}
}

// WithMetrics registers Prometheus collectors on reg and instruments every tool.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(k *Kit) {
		k.registerer = reg
	}
}

// New builds a Kit with every helper registered as a tool.
func New(opts ...Option) (*Kit, error) {
	k := &Kit{
		registry: registry.NewRegistry(),
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.logger == nil {
		k.logger = logging.NewNop()
	}

	toolOpts := []tools.Option{tools.WithLogger(k.logger), tools.WithDates(k.dates)}
	if k.palettes != nil {
		toolOpts = append(toolOpts, tools.WithPalettes(k.palettes))
	}
	if err := tools.Register(k.registry, toolOpts...); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	if k.registerer != nil {
		m, err := observability.NewMetrics(k.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics: %w", err)
		}
		m.Instrument(k.registry)
		k.metrics = m
	}

	return k, nil
}

// Registry returns the tool registry. Hosts may register their own tools on it.
func (k *Kit) Registry() *registry.Registry {
	return k.registry
}

// Logger returns the kit's logger.
func (k *Kit) Logger() *slog.Logger {
	return k.logger
}

// Metrics returns the kit's metrics, or nil when WithMetrics was not given.
func (k *Kit) Metrics() *observability.Metrics {
	return k.metrics
}

// Palettes returns the configured palette source, or nil.
func (k *Kit) Palettes() ports.PaletteSource {
	return k.palettes
}

// Call executes the named tool.
func (k *Kit) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	out, err := k.registry.Execute(ctx, name, args)
	if err != nil {
		k.logger.Debug("tool call failed", "tool", name, "err", err)
		return nil, err
	}
	return out, nil
}

// TimingOptions returns options that attach the kit's logger and metrics to a
// debouncer or throttler named name.
func (k *Kit) TimingOptions(name string) []timing.Option {
	opts := []timing.Option{timing.WithName(name), timing.WithLogger(k.logger)}
	if k.metrics != nil {
		opts = append(opts, timing.WithHooks(k.metrics.Hooks()))
	}
	return opts
}
