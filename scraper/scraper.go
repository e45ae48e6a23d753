package scraper

import "github.com/ghzgod/shuck-stop/models"

// Scraper fetches and parses one price source in a single shot.
// Implementations fail with a fetcher.FetchError when the source is
// unreachable and a parser.ParseError when its page structure changed.
type Scraper interface {
	// Name returns the source identifier (models.SourceShucks etc.)
	Name() string
	// Scrape performs one outbound request and returns the offers
	// found on the page
	Scrape() ([]models.DrivePrice, error)
}
