package tools

import (
	"context"
	"fmt"

	"github.com/aretw0/toolbelt/pkg/numeric"
	"github.com/aretw0/toolbelt/pkg/registry"
)

// maxDecimals is the most fractional digits a float64 can meaningfully carry.
const maxDecimals = 15

type clampArgs struct {
	Value float64 `mapstructure:"value"`
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
}

type percentArgs struct {
	Min     float64 `mapstructure:"min"`
	Max     float64 `mapstructure:"max"`
	Percent float64 `mapstructure:"percent"`
}

type roundArgs struct {
	Value    float64 `mapstructure:"value"`
	Decimals *int    `mapstructure:"decimals"`
}

type vectorArgs struct {
	U float64 `mapstructure:"u"`
	V float64 `mapstructure:"v"`
}

func numberTools() []registry.Tool {
	vector := []registry.Param{
		required("u", registry.TypeNumber, "Horizontal component."),
		required("v", registry.TypeNumber, "Vertical component."),
	}

	return []registry.Tool{
		define("number.clamp", "Restrict value to the [min, max] range.",
			[]registry.Param{
				required("value", registry.TypeNumber, "Value to clamp."),
				required("min", registry.TypeNumber, "Lower bound."),
				required("max", registry.TypeNumber, "Upper bound."),
			},
			func(_ context.Context, a clampArgs) (any, error) {
				return finite("number.clamp", numeric.Clamp(a.Value, a.Min, a.Max))
			}),

		define("number.from_percent", "Linear interpolation: the value at percent of the way from min to max.",
			[]registry.Param{
				required("min", registry.TypeNumber, "Value at 0%."),
				required("max", registry.TypeNumber, "Value at 100%."),
				required("percent", registry.TypeNumber, "Position in percent."),
			},
			func(_ context.Context, a percentArgs) (any, error) {
				return finite("number.from_percent", numeric.ValueFromPercent(a.Min, a.Max, a.Percent))
			}),

		define("number.round", "Round half up to a number of decimals.",
			[]registry.Param{
				required("value", registry.TypeNumber, "Value to round."),
				param("decimals", registry.TypeInteger, "Decimal places, 0 to 15 (default 2)."),
			},
			func(_ context.Context, a roundArgs) (any, error) {
				decimals := numeric.DefaultDecimals
				if a.Decimals != nil {
					decimals = *a.Decimals
				}
				if decimals < 0 || decimals > maxDecimals {
					return nil, invalid("number.round", fmt.Errorf("decimals must be between 0 and %d, got %d", maxDecimals, decimals))
				}
				return finite("number.round", numeric.ParseDecimal(a.Value, decimals))
			}),

		define("number.magnitude", "Length of the vector (u, v).", vector,
			func(_ context.Context, a vectorArgs) (any, error) {
				return finite("number.magnitude", numeric.Magnitude(a.U, a.V))
			}),

		define("number.angle", "Direction of the vector (u, v) in whole degrees, 0 to 359.", vector,
			func(_ context.Context, a vectorArgs) (any, error) {
				return numeric.Angle(a.U, a.V), nil
			}),
	}
}
