package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	require.Equal(t, "https://shucks.top/", cfg.Sources.ShucksURL)
	require.Equal(t, "https://diskprices.com/", cfg.Sources.DiskPricesURL)
	require.Equal(t, "docs/index.html", cfg.Output.Path)
	require.Equal(t, 8, cfg.Filters.MinCapacityTB)
	require.Equal(t, 5.0, cfg.Filters.PriceTolerancePct)
	require.Contains(t, cfg.Filters.AllowedBrands, "seagate")
	require.Contains(t, cfg.Filters.AllowedBrands, "easystore")
	require.Contains(t, cfg.Filters.ExcludedKeywords, "lacie")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
sources:
  shucks_url: "https://shucks.example/"
output:
  path: "out/prices.html"
filters:
  min_capacity_tb: 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "https://shucks.example/", cfg.Sources.ShucksURL)
	require.Equal(t, "out/prices.html", cfg.Output.Path)
	require.Equal(t, 12, cfg.Filters.MinCapacityTB)

	// Unset fields keep their defaults
	require.Equal(t, "https://diskprices.com/", cfg.Sources.DiskPricesURL)
	require.NotEmpty(t, cfg.Filters.AllowedBrands)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: ["), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
