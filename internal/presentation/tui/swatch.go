package tui

import (
	"fmt"

	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/muesli/termenv"
)

// Swatch renders a coloured block followed by the hex value and an optional note.
// On profiles without colour support only the text is printed.
func Swatch(p termenv.Profile, c color.RGB, note string) string {
	hex := c.Hex()
	block := p.String("      ").Background(p.Color(hex))

	line := fmt.Sprintf("%s %s  %s", block, hex, c.Oklch())
	if note != "" {
		line += "  " + p.String(note).Faint().String()
	}
	return line
}
