package tools

import (
	"context"
	"fmt"

	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/registry"
)

type opacityArgs struct {
	Color string  `mapstructure:"color"`
	Alpha float64 `mapstructure:"alpha"`
}

type hexArgs struct {
	Hex string `mapstructure:"hex"`
}

type rgbArgs struct {
	RGB []int `mapstructure:"rgb"`
}

type nearestArgs struct {
	Color     string   `mapstructure:"color"`
	Palette   []string `mapstructure:"palette"`
	Name      string   `mapstructure:"name"`
	Threshold *float64 `mapstructure:"threshold"`
}

func colorTools(s *settings) []registry.Tool {
	hex := required("hex", registry.TypeString, "Color as #rrggbb or #rgb.")

	return []registry.Tool{
		define("color.opacity", "Apply an alpha value to a hex or oklch() color.",
			[]registry.Param{
				required("color", registry.TypeString, "Hex or oklch() color."),
				required("alpha", registry.TypeNumber, "Opacity from 0 to 1."),
			},
			func(_ context.Context, a opacityArgs) (any, error) {
				return color.SetOpacity(a.Color, a.Alpha), nil
			}),

		define("color.hex_to_rgb", "Convert a hex color to an [r, g, b] triple.", []registry.Param{hex},
			func(_ context.Context, a hexArgs) (any, error) {
				c, err := color.HexToRGB(a.Hex)
				if err != nil {
					return nil, invalid("color.hex_to_rgb", err)
				}
				return []int{int(c.R()), int(c.G()), int(c.B())}, nil
			}),

		define("color.rgb_to_hex", "Convert an [r, g, b] triple to #rrggbb.",
			[]registry.Param{required("rgb", registry.TypeArray, "Three channels from 0 to 255.")},
			func(_ context.Context, a rgbArgs) (any, error) {
				c, err := toRGB(a.RGB)
				if err != nil {
					return nil, invalid("color.rgb_to_hex", err)
				}
				return color.RGBToHex(c), nil
			}),

		define("color.nearest", "Index of the closest palette color within a distance threshold.",
			[]registry.Param{
				required("color", registry.TypeString, "Target color (hex or oklch())."),
				param("palette", registry.TypeArray, "Inline palette of hex colors."),
				param("name", registry.TypeString, "Name of a stored palette, used when palette is absent."),
				param("threshold", registry.TypeNumber, fmt.Sprintf("Maximum RGB distance (default %g).", color.DefaultThreshold)),
			},
			func(ctx context.Context, a nearestArgs) (any, error) {
				return nearest(ctx, s, a)
			}),

		define("color.oklch", "Convert a hex color to an oklch() string.", []registry.Param{hex},
			func(_ context.Context, a hexArgs) (any, error) {
				out, err := color.Oklch(a.Hex)
				if err != nil {
					return nil, invalid("color.oklch", err)
				}
				return out, nil
			}),
	}
}

func toRGB(channels []int) (color.RGB, error) {
	var c color.RGB
	if len(channels) != 3 {
		return c, fmt.Errorf("%w: want 3 channels, got %d", color.ErrInvalidColor, len(channels))
	}
	for i, v := range channels {
		if v < 0 || v > 255 {
			return c, fmt.Errorf("%w: channel %d out of range: %d", color.ErrInvalidColor, i, v)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

func nearest(ctx context.Context, s *settings, a nearestArgs) (any, error) {
	target, err := color.Parse(a.Color)
	if err != nil {
		return nil, invalid("color.nearest", err)
	}

	var palette color.Palette
	switch {
	case len(a.Palette) > 0:
		palette, err = color.ParsePalette("inline", a.Palette)
		if err != nil {
			return nil, invalid("color.nearest", err)
		}
	case a.Name != "" && s.palettes != nil:
		palette, err = s.palettes.Palette(ctx, a.Name)
		if err != nil {
			return nil, fmt.Errorf("color.nearest: %w", err)
		}
	case a.Name != "":
		return nil, fmt.Errorf("%w: color.nearest: no palette source configured for %q", ErrInvalidArguments, a.Name)
	default:
		return nil, fmt.Errorf("%w: color.nearest: palette or name is required", ErrInvalidArguments)
	}

	threshold := color.DefaultThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}

	idx, ok := palette.Nearest(target, threshold)
	if !ok {
		return map[string]any{"found": false}, nil
	}
	return map[string]any{
		"found":    true,
		"index":    idx,
		"color":    palette.Colors[idx].Hex(),
		"distance": color.Distance(target, palette.Colors[idx]),
	}, nil
}
