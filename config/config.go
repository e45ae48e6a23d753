package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the pipeline needs: source URLs, the output
// path, and the filter/dedupe policy. Components receive it at
// construction time instead of reading globals.
type Config struct {
	Sources struct {
		ShucksURL     string `yaml:"shucks_url"`
		DiskPricesURL string `yaml:"diskprices_url"`
	} `yaml:"sources"`
	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
	Filters struct {
		MinCapacityTB     int      `yaml:"min_capacity_tb"`
		PriceTolerancePct float64  `yaml:"price_tolerance_pct"`
		AllowedBrands     []string `yaml:"allowed_brands"`
		ExcludedKeywords  []string `yaml:"excluded_keywords"`
	} `yaml:"filters"`
}

// LoadConfig loads configuration from a YAML file. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns the built-in configuration: the two live
// sources, docs/index.html output, an 8TB floor and the trusted
// shuckable-brand lists.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Sources.ShucksURL = "https://shucks.top/"
	cfg.Sources.DiskPricesURL = "https://diskprices.com/"
	cfg.Output.Path = "docs/index.html"
	cfg.Filters.MinCapacityTB = 8
	cfg.Filters.PriceTolerancePct = 5
	cfg.Filters.AllowedBrands = []string{
		// Seagate lines
		"seagate",
		"expansion",
		"one touch",
		"backup plus",
		// Western Digital lines
		"western digital",
		"wd",
		"easystore",
		"elements",
		"my book",
		"my passport",
	}
	cfg.Filters.ExcludedKeywords = []string{
		"avolusion",
		"buslink",
		"oyen",
		"fantom",
		"g-drive",
		"g-technology",
		"lacie",
		"transcend",
		"toshiba canvio", // keep Toshiba X300/N300, exclude Canvio
		"silicon power",
		"adata",
		"sabrent",
		"orico",
		"inateck",
	}
	return cfg
}
