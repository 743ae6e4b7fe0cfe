package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/toolbelt/pkg/adapters/memory"
	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalettes(t *testing.T) {
	ctx := context.Background()
	brand, err := color.ParsePalette("brand", []string{"#ff0000", "#00ff00"})
	require.NoError(t, err)
	mono, err := color.ParsePalette("mono", []string{"#000000", "#ffffff"})
	require.NoError(t, err)

	src := memory.NewPalettes(mono, brand)

	names, err := src.Palettes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"brand", "mono"}, names)

	got, err := src.Palette(ctx, "brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, got.Hex())

	got.Colors[0] = color.RGB{1, 2, 3}
	again, _ := src.Palette(ctx, "brand")
	assert.Equal(t, color.RGB{255, 0, 0}, again.Colors[0], "callers get copies")

	_, err = src.Palette(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrPaletteNotFound)
}
