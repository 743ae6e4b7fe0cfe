// Package loam reads colour palettes from a directory of documents through Loam.
//
// Each document describes one palette in its frontmatter (Markdown) or body (JSON/YAML):
//
//	---
//	name: brand
//	colors: ["#0f172a", "#38bdf8", "oklch(70% 0.1 200)"]
//	---
//	Optional notes.
//
// A document without a name is known by its file name without extension.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/ports"
)

// PaletteMetadata is the document header of a palette.
type PaletteMetadata struct {
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
	Colors      []string `json:"colors" mapstructure:"colors"`
}

// Palettes implements ports.PaletteSource over a Loam repository.
type Palettes struct {
	Repo *loam.TypedRepository[PaletteMetadata]
}

// NewPalettes wraps a typed repository.
func NewPalettes(repo *loam.TypedRepository[PaletteMetadata]) *Palettes {
	return &Palettes{Repo: repo}
}

// Open initializes a read-only Loam repository on dir.
func Open(dir string) (*Palettes, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid palette dir: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithVersioning(false),
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return NewPalettes(loam.NewTypedRepository[PaletteMetadata](repo)), nil
}

// Palette returns the named palette. Every colour must parse.
func (p *Palettes) Palette(ctx context.Context, name string) (color.Palette, error) {
	docs, err := p.load(ctx)
	if err != nil {
		return color.Palette{}, err
	}

	meta, ok := docs[name]
	if !ok {
		return color.Palette{}, fmt.Errorf("%w: %s", ports.ErrPaletteNotFound, name)
	}
	return color.ParsePalette(name, meta.Colors)
}

// Palettes lists palette names in sorted order.
func (p *Palettes) Palettes(ctx context.Context) ([]string, error) {
	docs, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (p *Palettes) load(ctx context.Context) (map[string]PaletteMetadata, error) {
	docs, err := p.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	out := make(map[string]PaletteMetadata, len(docs))
	for _, doc := range docs {
		name := doc.Data.Name
		if name == "" {
			name = trimExtension(doc.ID)
		}
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: palette '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		seen[name] = doc.ID
		out[name] = doc.Data
	}
	return out, nil
}

func trimExtension(id string) string {
	return filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))
}
