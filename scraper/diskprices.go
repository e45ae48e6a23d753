package scraper

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/fetcher"
	"github.com/ghzgod/shuck-stop/models"
	"github.com/ghzgod/shuck-stop/parser"
)

// DiskPricesScraper scrapes a pre-filtered diskprices.com listing
// (US locale, new condition, external HDDs at or above the configured
// minimum capacity).
type DiskPricesScraper struct {
	url     string
	fetcher fetcher.Fetcher
	parser  *parser.DiskPricesParser
}

// NewDiskPricesScraper creates a new DiskPricesScraper instance
func NewDiskPricesScraper(cfg *config.Config) (*DiskPricesScraper, error) {
	listURL, err := buildListingURL(cfg.Sources.DiskPricesURL, cfg.Filters.MinCapacityTB)
	if err != nil {
		return nil, err
	}
	return &DiskPricesScraper{
		url:     listURL,
		fetcher: fetcher.NewRestyFetcher(models.SourceDiskPrices),
		parser:  parser.NewDiskPricesParser(cfg.Filters.MinCapacityTB),
	}, nil
}

// Name implements the Scraper interface
func (s *DiskPricesScraper) Name() string {
	return models.SourceDiskPrices
}

// Scrape implements the Scraper interface
func (s *DiskPricesScraper) Scrape() ([]models.DrivePrice, error) {
	html, err := s.fetcher.Fetch(s.url)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(html)
}

// buildListingURL appends the diskprices.com filter query to the base
// URL so the page only lists new external HDDs from minCapacityTB up.
func buildListingURL(base string, minCapacityTB int) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid diskprices URL: %w", err)
	}

	query := parsed.Query()
	query.Set("locale", "us")
	query.Set("condition", "new")
	query.Set("capacity", strconv.Itoa(minCapacityTB)+"-")
	query.Set("disk_types", "external_hdd")
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
