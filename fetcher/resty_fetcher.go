package fetcher

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyFetcher implements the Fetcher interface with a plain resty
// client. diskprices.com serves static HTML, so a single GET with
// browser-ish headers is all it takes.
type RestyFetcher struct {
	source string
	client *resty.Client
}

// NewRestyFetcher creates a new RestyFetcher instance
func NewRestyFetcher(source string) *RestyFetcher {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	return &RestyFetcher{
		source: source,
		client: client,
	}
}

// Fetch implements the Fetcher interface
func (rf *RestyFetcher) Fetch(url string) (string, error) {
	resp, err := rf.client.R().Get(url)
	if err != nil {
		return "", &FetchError{Source: rf.source, URL: url, Err: err}
	}
	if resp.IsError() {
		return "", &FetchError{
			Source: rf.source,
			URL:    url,
			Err:    fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}
	return resp.String(), nil
}
