package color

import (
	"fmt"
	"math"
)

// DefaultThreshold is the largest distance Nearest accepts when callers have no opinion.
const DefaultThreshold = 10.0

// Distance returns the Euclidean distance between a and b in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a[0]) - float64(b[0])
	dg := float64(a[1]) - float64(b[1])
	db := float64(a[2]) - float64(b[2])
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Nearest returns the index of the palette entry closest to target.
// The first of several equally close entries wins. ok is false when the palette is
// empty or the closest entry is farther than threshold.
func Nearest(target RGB, palette []RGB, threshold float64) (index int, ok bool) {
	if len(palette) == 0 {
		return 0, false
	}
	lowest := math.Inf(1)
	for i, c := range palette {
		if d := Distance(target, c); d < lowest {
			lowest, index = d, i
		}
	}
	if lowest > threshold {
		return 0, false
	}
	return index, true
}

// Palette is a named, ordered list of colours.
type Palette struct {
	Name   string
	Colors []RGB
}

// ParsePalette builds a palette from colour strings accepted by Parse.
func ParsePalette(name string, colors []string) (Palette, error) {
	p := Palette{Name: name, Colors: make([]RGB, 0, len(colors))}
	for i, s := range colors {
		c, err := Parse(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q entry %d: %w", name, i, err)
		}
		p.Colors = append(p.Colors, c)
	}
	return p, nil
}

// Nearest is Nearest over the palette's colours.
func (p Palette) Nearest(target RGB, threshold float64) (int, bool) {
	return Nearest(target, p.Colors, threshold)
}

// Hex returns the palette colours as #rrggbb strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}
