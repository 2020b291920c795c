package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 32, cfg.Scan.ExpansionHorizontal)
	assert.Equal(t, 52, cfg.Scan.ExpansionVertical)
	assert.Equal(t, 52, cfg.Scan.InitialHorizontal)
	assert.Equal(t, 26, cfg.Scan.InitialVertical)
	assert.Equal(t, 84, cfg.Scan.SearchRadius())

	assert.Contains(t, cfg.Terrain.WaterBlocks, "water")
	assert.Contains(t, cfg.Terrain.WaterBlocks, "lava")
	assert.Contains(t, cfg.Terrain.RiverTokens, "river")
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hearthfind.yaml")
	raw := []byte(`
scan:
  expansion_horizontal: 16
terrain:
  min_water_blocks: 5
db_path: /tmp/other.db
`)
	require.NoError(t, os.WriteFile(path, raw, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Scan.ExpansionHorizontal)
	assert.Equal(t, 52, cfg.Scan.ExpansionVertical, "untouched keys keep defaults")
	assert.Equal(t, 5, cfg.Terrain.MinWaterBlocks)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
}

func TestLoadRejectsMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
