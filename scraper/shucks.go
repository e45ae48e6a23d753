package scraper

import (
	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/fetcher"
	"github.com/ghzgod/shuck-stop/models"
	"github.com/ghzgod/shuck-stop/parser"
)

// ShucksScraper scrapes the shucks.top front page
type ShucksScraper struct {
	url     string
	fetcher fetcher.Fetcher
	parser  *parser.ShucksParser
}

// NewShucksScraper creates a new ShucksScraper instance
func NewShucksScraper(cfg *config.Config) *ShucksScraper {
	return &ShucksScraper{
		url:     cfg.Sources.ShucksURL,
		fetcher: fetcher.NewCollyFetcher(models.SourceShucks),
		parser:  parser.NewShucksParser(),
	}
}

// Name implements the Scraper interface
func (s *ShucksScraper) Name() string {
	return models.SourceShucks
}

// Scrape implements the Scraper interface
func (s *ShucksScraper) Scrape() ([]models.DrivePrice, error) {
	html, err := s.fetcher.Fetch(s.url)
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(html)
}
