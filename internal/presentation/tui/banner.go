package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the toolbelt ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct{ text, hex string }{
		{"  _              _ _          _ _   ", "#38bdf8"},
		{" | |_ ___   ___ | | |__   ___| | |_ ", "#22d3ee"},
		{" | __/ _ \\ / _ \\| | '_ \\ / _ \\ | __|", "#2dd4bf"},
		{" | || (_) | (_) | | |_) |  __/ | |_ ", "#34d399"},
		{"  \\__\\___/ \\___/|_|_.__/ \\___|_|\\__|", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.hex)))
	}
	fmt.Fprintln(w)
}
