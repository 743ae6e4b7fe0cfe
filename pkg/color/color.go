package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with 8-bit red, green and blue channels.
type RGB [3]uint8

// R returns the red channel.
func (c RGB) R() uint8 { return c[0] }

// G returns the green channel.
func (c RGB) G() uint8 { return c[1] }

// B returns the blue channel.
func (c RGB) B() uint8 { return c[2] }

// Hex returns the colour as a lower-case #rrggbb string.
func (c RGB) Hex() string { return RGBToHex(c) }

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func fromColorful(col colorful.Color) RGB {
	r, g, b := col.Clamped().RGB255()
	return RGB{r, g, b}
}

// SetOpacity applies alpha to an oklch() or hex colour string.
// oklch strings get a "/ alpha" channel; hex strings get a two digit alpha byte
// (round(alpha*255), alpha clamped to [0, 1]). Any other string is returned unchanged.
func SetOpacity(color string, alpha float64) string {
	switch {
	case strings.HasPrefix(color, "oklch"):
		return color[:len(color)-1] + " / " + strconv.FormatFloat(alpha, 'f', -1, 64) + ")"
	case strings.HasPrefix(color, "#"):
		a := math.Round(min(max(alpha, 0), 1) * 255)
		return fmt.Sprintf("%s%02x", color, int(a))
	default:
		return color
	}
}

// HexToRGB parses a #rrggbb (or #rgb) colour. The leading '#' is optional.
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if (len(h) != 6 && len(h) != 3) || !isHex(h) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	col, err := colorful.Hex("#" + h)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, hex, err)
	}
	return fromColorful(col), nil
}

// RGBToHex formats c as a lower-case #rrggbb string.
func RGBToHex(c RGB) string {
	return c.colorful().Hex()
}

// Oklch formats a hex colour as a CSS oklch() string, lightness in percent.
func Oklch(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return c.Oklch(), nil
}

// Oklch formats c as a CSS oklch() string.
func (c RGB) Oklch() string {
	l, ch, h := c.colorful().OkLch()
	if ch < 1e-4 {
		ch, h = 0, 0
	}
	return fmt.Sprintf("oklch(%.2f%% %.4f %.2f)", l*100, ch, h)
}

// Parse reads a hex colour or an oklch() string such as "oklch(62.8% 0.2577 29.23)".
// Any alpha channel is ignored; out-of-gamut oklch colours are clamped.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "oklch(") {
		c, err := HexToRGB(s)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	body, ok := strings.CutSuffix(strings.TrimPrefix(s, "oklch("), ")")
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	body, _, _ = strings.Cut(body, "/")
	fields := strings.Fields(body)
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("%w: %q: want 3 components", ErrInvalidColor, s)
	}

	var comps [3]float64
	for i, f := range fields {
		scale := 1.0
		if i == 0 && strings.HasSuffix(f, "%") {
			f, scale = strings.TrimSuffix(f, "%"), 0.01
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		comps[i] = v * scale
	}
	return fromColorful(colorful.OkLch(comps[0], comps[1], comps[2])), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
