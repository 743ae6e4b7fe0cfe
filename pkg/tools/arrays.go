package tools

import (
	"context"
	"fmt"
	"slices"

	"github.com/aretw0/toolbelt/pkg/arrays"
	"github.com/aretw0/toolbelt/pkg/objpath"
	"github.com/aretw0/toolbelt/pkg/registry"
	"github.com/spf13/cast"
)

type stepsArgs struct {
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	Steps int     `mapstructure:"steps"`
}

type chunkArgs struct {
	Values []any `mapstructure:"values"`
	Size   int   `mapstructure:"size"`
}

type valuesArgs struct {
	Values []float64 `mapstructure:"values"`
}

type trimmedArgs struct {
	Values  []float64 `mapstructure:"values"`
	Percent float64   `mapstructure:"percent"`
}

type groupArgs struct {
	Items []map[string]any `mapstructure:"items"`
	Field string           `mapstructure:"field"`
}

type replaceArgs struct {
	Items []map[string]any `mapstructure:"items"`
	Field string           `mapstructure:"field"`
	Item  map[string]any   `mapstructure:"item"`
}

// maxSteps caps array.steps so one request cannot allocate an unbounded sequence.
const maxSteps = 10_000

func arrayTools() []registry.Tool {
	values := required("values", registry.TypeArray, "Numbers to scan.")

	return []registry.Tool{
		define("array.steps", "Evenly spaced values from min to max, both included.",
			[]registry.Param{
				required("min", registry.TypeNumber, "First value."),
				required("max", registry.TypeNumber, "Last value."),
				required("steps", registry.TypeInteger, "Number of values, 2 to 10000."),
			},
			func(_ context.Context, a stepsArgs) (any, error) {
				if a.Steps > maxSteps {
					return nil, invalid("array.steps", fmt.Errorf("%w: at most %d, got %d", arrays.ErrInvalidSteps, maxSteps, a.Steps))
				}
				out, err := arrays.Steps(a.Min, a.Max, a.Steps)
				if err != nil {
					return nil, invalid("array.steps", err)
				}
				if slices.ContainsFunc(out, notFinite) {
					return nil, invalid("array.steps", errNotFinite)
				}
				return out, nil
			}),

		define("array.chunk", "Split values into consecutive chunks of at most size elements.",
			[]registry.Param{
				required("values", registry.TypeArray, "Values to split."),
				required("size", registry.TypeInteger, "Chunk size, at least 1."),
			},
			func(_ context.Context, a chunkArgs) (any, error) {
				out, err := arrays.Chunk(a.Values, a.Size)
				if err != nil {
					return nil, invalid("array.chunk", err)
				}
				return out, nil
			}),

		define("array.max", "Largest of the values.", []registry.Param{values},
			func(_ context.Context, a valuesArgs) (any, error) {
				v, err := arrays.Max(a.Values)
				if err != nil {
					return nil, invalid("array.max", err)
				}
				return v, nil
			}),

		define("array.min", "Smallest of the values.", []registry.Param{values},
			func(_ context.Context, a valuesArgs) (any, error) {
				v, err := arrays.Min(a.Values)
				if err != nil {
					return nil, invalid("array.min", err)
				}
				return v, nil
			}),

		define("array.trimmed", "Sorted values with percent/2 percent removed from each end, and their mean.",
			[]registry.Param{
				values,
				required("percent", registry.TypeNumber, "Total trim percentage, 1 to 99."),
			},
			func(_ context.Context, a trimmedArgs) (any, error) {
				trimmed, ok, err := arrays.TrimmedAverage(a.Values, a.Percent)
				if err != nil {
					return nil, invalid("array.trimmed", err)
				}
				if !ok {
					return map[string]any{"ok": false, "values": []float64{}}, nil
				}
				mean, err := arrays.Mean(trimmed)
				if err != nil {
					return nil, err
				}
				if notFinite(mean) {
					return nil, invalid("array.trimmed", errNotFinite)
				}
				return map[string]any{"ok": true, "values": trimmed, "mean": mean}, nil
			}),

		define("array.group", "Group objects by the value at a dotted field path.",
			[]registry.Param{
				required("items", registry.TypeArray, "Objects to group."),
				required("field", registry.TypeString, "Dotted path of the grouping key."),
			},
			func(_ context.Context, a groupArgs) (any, error) {
				return arrays.GroupBy(a.Items, func(item map[string]any) string {
					return cast.ToString(objpath.Resolve(item, a.Field, nil))
				}), nil
			}),

		define("array.replace", "Replace the first object whose field equals item's field.",
			[]registry.Param{
				required("items", registry.TypeArray, "Objects to search."),
				required("field", registry.TypeString, "Field compared for equality."),
				required("item", registry.TypeObject, "Replacement object."),
			},
			func(_ context.Context, a replaceArgs) (any, error) {
				items := slices.Clone(a.Items)
				replaced := arrays.ReplaceByField(items, a.Field, a.Item)
				return map[string]any{"replaced": replaced, "items": items}, nil
			}),
	}
}
