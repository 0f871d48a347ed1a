package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardrender/internal/render"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Color)
	assert.Equal(t, 0, cfg.Width)

	_, err = os.Stat(filepath.Join(dir, "cardrender", "config.toml"))
	assert.NoError(t, err)
}

func TestSetters_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SetPaletteColor("plants", "#00ff00"))
	require.NoError(t, SetPaletteColor("trade_discount", "#ff00ff"))
	require.NoError(t, SetWidth(72))
	require.NoError(t, SetColor(false))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.Equal(t, 72, cfg.Width)

	palette, err := cfg.ItemPalette()
	require.NoError(t, err)
	assert.Equal(t, map[render.ItemKind]string{
		render.ItemPlants:        "#00ff00",
		render.ItemTradeDiscount: "#ff00ff",
	}, palette)
}

func TestSetters_RejectBadInput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.EqualError(t, SetPaletteColor("lava", "#ffffff"), "unknown item kind: lava")
	assert.Error(t, SetPaletteColor("heat", "orange"))
	assert.EqualError(t, SetWidth(-1), "width must not be negative: -1")
}

func TestLoadConfig_UnknownPaletteKind(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "cardrender", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("color = false\n[palette]\nlava = \"#ff0000\"\n"), 0644))

	_, err := LoadConfig()
	assert.EqualError(t, err, "unknown item kind in palette: lava")
}
