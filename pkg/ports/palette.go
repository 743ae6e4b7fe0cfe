package ports

import (
	"context"
	"errors"

	"github.com/aretw0/toolbelt/pkg/color"
)

// ErrPaletteNotFound is returned when a named palette does not exist in a source.
var ErrPaletteNotFound = errors.New("palette not found")

// PaletteSource provides named colour palettes.
type PaletteSource interface {
	// Palette returns the palette with the given name, or ErrPaletteNotFound.
	Palette(ctx context.Context, name string) (color.Palette, error)

	// Palettes lists the available palette names in sorted order.
	Palettes(ctx context.Context) ([]string, error)
}
