package color_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOpacity(t *testing.T) {
	tests := []struct {
		name  string
		color string
		alpha float64
		want  string
	}{
		{"oklch", "oklch(62.8% 0.2577 29.23)", 0.5, "oklch(62.8% 0.2577 29.23 / 0.5)"},
		{"hex half", "#ff0000", 0.5, "#ff000080"},
		{"hex opaque", "#ff0000", 1, "#ff0000ff"},
		{"hex transparent", "#ff0000", 0, "#ff000000"},
		{"hex small alpha is zero padded", "#00ff00", 0.02, "#00ff0005"},
		{"hex alpha clamped", "#0000ff", 3, "#0000ffff"},
		{"named colour passes through", "rebeccapurple", 0.3, "rebeccapurple"},
		{"rgb() passes through", "rgb(1, 2, 3)", 0.3, "rgb(1, 2, 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, color.SetOpacity(tt.color, tt.alpha))
		})
	}
}

func TestHexToRGB(t *testing.T) {
	c, err := color.HexToRGB("#1e90ff")
	require.NoError(t, err)
	assert.Equal(t, color.RGB{30, 144, 255}, c)
	assert.Equal(t, uint8(30), c.R())
	assert.Equal(t, uint8(144), c.G())
	assert.Equal(t, uint8(255), c.B())

	c, err = color.HexToRGB("1E90FF")
	require.NoError(t, err)
	assert.Equal(t, color.RGB{30, 144, 255}, c)

	c, err = color.HexToRGB("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGB{255, 255, 255}, c)

	for _, bad := range []string{"", "#", "#12345", "#1234567", "#gg0000", "oklch(1 0 0)", "#12 456"} {
		_, err := color.HexToRGB(bad)
		assert.ErrorIs(t, err, color.ErrInvalidHex, "input %q", bad)
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#000000", color.RGBToHex(color.RGB{0, 0, 0}))
	assert.Equal(t, "#0a0b0c", color.RGBToHex(color.RGB{10, 11, 12}))
	assert.Equal(t, "#ffffff", color.RGB{255, 255, 255}.Hex())
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 5 {
			for _, b := range []int{0, 1, 127, 128, 254, 255} {
				in := color.RGB{uint8(r), uint8(g), uint8(b)}
				out, err := color.HexToRGB(color.RGBToHex(in))
				require.NoError(t, err)
				if out != in {
					t.Fatalf("round trip %v -> %s -> %v", in, color.RGBToHex(in), out)
				}
			}
		}
	}
}

func TestOklch(t *testing.T) {
	s, err := color.Oklch("#ff0000")
	require.NoError(t, err)

	var l, c, h float64
	_, err = fmt.Sscanf(s, "oklch(%f%% %f %f)", &l, &c, &h)
	require.NoError(t, err, "unexpected format %q", s)
	assert.InDelta(t, 62.8, l, 0.1)
	assert.InDelta(t, 0.2577, c, 0.001)
	assert.InDelta(t, 29.23, h, 0.1)

	grey, err := color.Oklch("#808080")
	require.NoError(t, err)
	assert.Contains(t, grey, " 0.0000 0.00)")

	_, err = color.Oklch("nope")
	assert.ErrorIs(t, err, color.ErrInvalidHex)

	assert.Equal(t, s, color.RGB{255, 0, 0}.Oklch())
	assert.Contains(t, color.SetOpacity(s, 0.25), " / 0.25)")
}

func TestParse(t *testing.T) {
	c, err := color.Parse("  #336699 ")
	require.NoError(t, err)
	assert.Equal(t, color.RGB{0x33, 0x66, 0x99}, c)

	// OKLCH strings produced by Oklch parse back to (nearly) the same colour.
	for _, hex := range []string{"#ff0000", "#1e90ff", "#336699", "#000000", "#ffffff"} {
		want, err := color.HexToRGB(hex)
		require.NoError(t, err)

		s, err := color.Oklch(hex)
		require.NoError(t, err)
		got, err := color.Parse(color.SetOpacity(s, 0.4))
		require.NoError(t, err, s)
		assert.LessOrEqual(t, color.Distance(want, got), 2.0, "%s via %s -> %v", hex, s, got)
	}

	for _, bad := range []string{"oklch(1 2)", "oklch(a b c)", "oklch(1 2 3", "hsl(1 2 3)"} {
		_, err := color.Parse(bad)
		assert.ErrorIs(t, err, color.ErrInvalidColor, bad)
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, color.Distance(color.RGB{1, 2, 3}, color.RGB{1, 2, 3}))
	assert.InDelta(t, math.Sqrt(300), color.Distance(color.RGB{0, 0, 0}, color.RGB{10, 10, 10}), 1e-12)
	assert.InDelta(t, math.Sqrt(3*255*255), color.Distance(color.RGB{255, 255, 255}, color.RGB{0, 0, 0}), 1e-9)
}

func TestNearest(t *testing.T) {
	i, ok := color.Nearest(color.RGB{0, 0, 0}, []color.RGB{{10, 10, 10}, {200, 200, 200}}, 50)
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = color.Nearest(color.RGB{0, 0, 0}, []color.RGB{{200, 200, 200}}, color.DefaultThreshold)
	assert.False(t, ok)

	t.Run("first minimum wins", func(t *testing.T) {
		palette := []color.RGB{{50, 0, 0}, {0, 5, 0}, {0, 0, 5}, {5, 0, 0}}
		i, ok := color.Nearest(color.RGB{0, 0, 0}, palette, 10)
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		i, ok := color.Nearest(color.RGB{0, 0, 0}, []color.RGB{{0, 0, 10}}, 10)
		assert.True(t, ok)
		assert.Equal(t, 0, i)
	})

	t.Run("empty palette", func(t *testing.T) {
		_, ok := color.Nearest(color.RGB{}, nil, math.Inf(1))
		assert.False(t, ok)
	})
}

func TestPalette(t *testing.T) {
	p, err := color.ParsePalette("basic", []string{"#000000", "#ff0000", "#00ff00", "#0000ff"})
	require.NoError(t, err)
	assert.Equal(t, "basic", p.Name)
	assert.Equal(t, []string{"#000000", "#ff0000", "#00ff00", "#0000ff"}, p.Hex())

	i, ok := p.Nearest(color.RGB{250, 3, 4}, 10)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, err = color.ParsePalette("broken", []string{"#000000", "zzz"})
	assert.ErrorIs(t, err, color.ErrInvalidColor)
	assert.Contains(t, err.Error(), "entry 1")
}
