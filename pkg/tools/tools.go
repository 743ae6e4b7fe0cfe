// Package tools binds the stateless helpers into a registry.Registry under stable names,
// decoding loosely typed arguments (JSON bodies, CLI literals, MCP calls) into each helper's
// parameters.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aretw0/toolbelt/internal/logging"
	"github.com/aretw0/toolbelt/pkg/dates"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

// ErrInvalidArguments wraps every argument decoding or validation failure.
var ErrInvalidArguments = errors.New("invalid arguments")

// Option configures Register.
type Option func(*settings)

type settings struct {
	palettes ports.PaletteSource
	dates    *dates.Formatter
	logger   *slog.Logger
}

// WithPalettes lets color.nearest resolve palettes by name.
func WithPalettes(src ports.PaletteSource) Option {
	return func(s *settings) {
		s.palettes = src
	}
}

// WithDates sets the formatter used by the date tools (default: local zone, wall clock).
func WithDates(f *dates.Formatter) Option {
	return func(s *settings) {
		if f != nil {
			s.dates = f
		}
	}
}

// WithLogger configures the logger used by the tools.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Register adds every helper tool to reg.
func Register(reg *registry.Registry, opts ...Option) error {
	s := &settings{
		dates:  dates.New(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	var all []registry.Tool
	all = append(all, arrayTools()...)
	all = append(all, colorTools(s)...)
	all = append(all, numberTools()...)
	all = append(all, textTools()...)
	all = append(all, dateTools(s)...)

	for _, tool := range all {
		if err := reg.Register(tool); err != nil {
			return fmt.Errorf("register %s: %w", tool.Name, err)
		}
	}
	s.logger.Debug("tools registered", "count", len(all))
	return nil
}

// define builds a tool whose arguments decode into A.
func define[A any](name, description string, params []registry.Param, fn func(ctx context.Context, args A) (any, error)) registry.Tool {
	return registry.Tool{
		Name:        name,
		Description: description,
		Params:      params,
		Fn: func(ctx context.Context, raw map[string]any) (any, error) {
			for _, p := range params {
				if _, ok := raw[p.Name]; p.Required && !ok {
					return nil, fmt.Errorf("%w: %s: missing %q", ErrInvalidArguments, name, p.Name)
				}
			}
			var args A
			if err := decode(raw, &args); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, name, err)
			}
			return fn(ctx, args)
		},
	}
}

func decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// invalid wraps a helper precondition error so callers can map it to a client error.
func invalid(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidArguments, name, err)
}

// errNotFinite reports a numeric result that JSON cannot carry.
var errNotFinite = errors.New("result is not a finite number")

// finite rejects NaN and infinite results.
func finite(name string, v float64) (any, error) {
	if notFinite(v) {
		return nil, invalid(name, errNotFinite)
	}
	return v, nil
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func param(name, typ, description string) registry.Param {
	return registry.Param{Name: name, Type: typ, Description: description}
}

func required(name, typ, description string) registry.Param {
	return registry.Param{Name: name, Type: typ, Description: description, Required: true}
}
