package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/ports"
)

// Palettes implements ports.PaletteSource over a fixed set of palettes.
type Palettes struct {
	mu       sync.RWMutex
	palettes map[string]color.Palette
}

// NewPalettes creates a source holding the given palettes, keyed by name.
func NewPalettes(palettes ...color.Palette) *Palettes {
	p := &Palettes{palettes: make(map[string]color.Palette, len(palettes))}
	for _, pal := range palettes {
		p.Add(pal)
	}
	return p
}

// Add stores a copy of pal, replacing any palette with the same name.
func (p *Palettes) Add(pal color.Palette) {
	pal.Colors = slices.Clone(pal.Colors)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.palettes[pal.Name] = pal
}

// Palette returns a copy of the named palette.
func (p *Palettes) Palette(ctx context.Context, name string) (color.Palette, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	pal, ok := p.palettes[name]
	if !ok {
		return color.Palette{}, fmt.Errorf("%w: %s", ports.ErrPaletteNotFound, name)
	}
	pal.Colors = slices.Clone(pal.Colors)
	return pal, nil
}

// Palettes lists palette names in sorted order.
func (p *Palettes) Palettes(ctx context.Context) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.palettes)), nil
}
