package loam_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/toolbelt/internal/testutils"
	loamAdapter "github.com/aretw0/toolbelt/pkg/adapters/loam"
	"github.com/aretw0/toolbelt/pkg/color"
	"github.com/aretw0/toolbelt/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, files map[string]string) *loamAdapter.Palettes {
	t.Helper()
	dir, repo := testutils.SetupTestRepo(t)
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return loamAdapter.NewPalettes(loam.NewTypedRepository[loamAdapter.PaletteMetadata](repo))
}

func TestPalettes_ListAndGet(t *testing.T) {
	src := seed(t, map[string]string{
		"brand.md": `---
name: brand
colors: ["#ff0000", "#00ff00", "#0000ff"]
---
Primary brand colours.`,
		"mono.json": `{"colors": ["#000000", "#ffffff"]}`,
	})
	ctx := context.Background()

	names, err := src.Palettes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"brand", "mono"}, names)

	brand, err := src.Palette(ctx, "brand")
	require.NoError(t, err)
	assert.Equal(t, "brand", brand.Name)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, brand.Hex())

	idx, ok := brand.Nearest(color.RGB{250, 5, 5}, color.DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	mono, err := src.Palette(ctx, "mono")
	require.NoError(t, err)
	assert.Len(t, mono.Colors, 2)

	_, err = src.Palette(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrPaletteNotFound)
}

func TestPalettes_InvalidColour(t *testing.T) {
	src := seed(t, map[string]string{
		"bad.md": "---\ncolors: [\"#zzzzzz\"]\n---\n",
	})

	_, err := src.Palette(context.Background(), "bad")
	assert.ErrorIs(t, err, color.ErrInvalidColor)
}

func TestPalettes_Collision(t *testing.T) {
	src := seed(t, map[string]string{
		"a.md": "---\nname: dup\ncolors: [\"#000000\"]\n---\n",
		"b.md": "---\nname: dup\ncolors: [\"#ffffff\"]\n---\n",
	})

	_, err := src.Palettes(context.Background())
	assert.ErrorContains(t, err, "collision detected")
}
