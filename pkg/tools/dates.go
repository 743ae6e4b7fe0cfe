package tools

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/toolbelt/pkg/dates"
	"github.com/aretw0/toolbelt/pkg/registry"
)

type timestampArgs struct {
	Timestamp string `mapstructure:"timestamp"`
}

type formatArgs struct {
	Timestamp string `mapstructure:"timestamp"`
	Layout    string `mapstructure:"layout"`
}

type noArgs struct{}

func dateTools(s *settings) []registry.Tool {
	ts := []registry.Param{required("timestamp", registry.TypeString, "ISO 8601 or another common timestamp layout.")}
	f := s.dates

	shorthand := func(name, description string, fn func(string) (string, error)) registry.Tool {
		return define(name, description, ts, func(_ context.Context, a timestampArgs) (any, error) {
			return dateResult(name)(fn(a.Timestamp))
		})
	}

	return []registry.Tool{
		define("date.format", "Format a timestamp with a Go reference layout.",
			[]registry.Param{
				ts[0],
				required("layout", registry.TypeString, "Layout written against Mon Jan 2 15:04:05 2006."),
			},
			func(_ context.Context, a formatArgs) (any, error) {
				return dateResult("date.format")(f.Format(a.Timestamp, a.Layout))
			}),
		shorthand("date.full", "Format as \"02 Jan, 2006 - 15:04:05\".", f.Full),
		shorthand("date.dmy", "Format as \"02 Jan, 2006\".", f.DMY),
		shorthand("date.picker", "Format as \"2006-01-02\".", f.Picker),
		shorthand("date.to", "Describe the timestamp relative to now (\"3 hours ago\").", f.To),
		shorthand("date.from", "Describe now relative to the timestamp.", f.From),
		define("date.now", "Current time in RFC 3339.", nil,
			func(context.Context, noArgs) (any, error) {
				return f.Now().Format(time.RFC3339), nil
			}),
	}
}

func dateResult(name string) func(string, error) (any, error) {
	return func(out string, err error) (any, error) {
		if errors.Is(err, dates.ErrInvalidTimestamp) {
			return nil, invalid(name, err)
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}
