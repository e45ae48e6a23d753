package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/filter"
	"github.com/ghzgod/shuck-stop/htmlgen"
	"github.com/ghzgod/shuck-stop/models"
	"github.com/ghzgod/shuck-stop/normalize"
	"github.com/ghzgod/shuck-stop/scraper"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	outputPath := flag.String("output", "", "Output HTML path (overrides config)")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	cfg := loadConfig(*configPath)
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if configPath == "" {
		return config.GetDefaultConfig()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config file, using defaults")
		return config.GetDefaultConfig()
	}
	return cfg
}

func run(cfg *config.Config) error {
	diskPrices, err := scraper.NewDiskPricesScraper(cfg)
	if err != nil {
		return err
	}
	return runPipeline(cfg, []scraper.Scraper{
		scraper.NewShucksScraper(cfg),
		diskPrices,
	})
}

func runPipeline(cfg *config.Config, scrapers []scraper.Scraper) error {
	// The two sources are independent: scrape them concurrently, each
	// into its own slot.
	results := make([][]models.DrivePrice, len(scrapers))
	errs := make([]error, len(scrapers))

	var wg sync.WaitGroup
	for i, s := range scrapers {
		wg.Add(1)
		go func(i int, s scraper.Scraper) {
			defer wg.Done()
			log.Info().Str("source", s.Name()).Msg("scraping")
			results[i], errs[i] = s.Scrape()
		}(i, s)
	}
	wg.Wait()

	failures := 0
	for i, s := range scrapers {
		if errs[i] != nil {
			// A single dead source degrades the page, it does not
			// kill the run.
			log.Error().Err(errs[i]).Str("source", s.Name()).Msg("source failed, continuing without it")
			failures++
			continue
		}
		log.Info().Str("source", s.Name()).Int("drives", len(results[i])).Msg("scraped")
	}
	if failures == len(scrapers) {
		return fmt.Errorf("all %d sources failed, leaving existing output untouched", len(scrapers))
	}

	var all []models.DrivePrice
	for _, set := range results {
		all = append(all, set...)
	}

	log.Info().Int("drives", len(all)).Msg("before brand filter")
	all = filter.NewFilter(cfg).Apply(all)
	log.Info().Int("drives", len(all)).Msg("after brand filter")

	table := normalize.NewNormalizer(cfg).Build(all)
	log.Info().
		Int("drives", table.TotalDrives()).
		Int("capacity_tiers", len(table.Groups)).
		Msg("after deduplication")

	page, err := htmlgen.Render(table, htmlgen.RenderOptions{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
	})
	if err != nil {
		return err
	}

	if err := writePage(cfg.Output.Path, page); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output.Path).Msg("wrote comparison page")

	logBestDeals(table)
	return nil
}

// writePage writes the rendered document, creating the output
// directory when needed.
func writePage(path, page string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// logBestDeals mirrors the page's summary panel onto the console
func logBestDeals(table normalize.ComparisonTable) {
	for _, group := range table.Groups {
		if group.Best == nil {
			continue
		}
		best := group.Best
		log.Info().
			Int("capacity_tb", group.CapacityTB).
			Str("price", fmt.Sprintf("$%.2f", best.Price)).
			Str("per_tb", fmt.Sprintf("$%.2f", best.PricePerTB)).
			Str("retailer", best.Retailer).
			Str("model", best.Model).
			Msg("best deal")
	}
}
