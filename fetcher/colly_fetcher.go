package fetcher

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	source    string
	userAgent string
}

// NewCollyFetcher creates a new CollyFetcher instance. The source name
// is only used to label errors.
func NewCollyFetcher(source string) *CollyFetcher {
	return &CollyFetcher{
		source:    source,
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	c := colly.NewCollector(
		colly.UserAgent(cf.userAgent),
	)
	c.SetRequestTimeout(30 * time.Second)

	// Be polite if the page ever redirects us around
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       1 * time.Second,
	})

	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = &FetchError{Source: cf.source, URL: url, Err: err}
	})

	if err := c.Visit(url); err != nil {
		return "", &FetchError{Source: cf.source, URL: url, Err: err}
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	if body == "" {
		return "", &FetchError{Source: cf.source, URL: url, Err: fmt.Errorf("empty response body")}
	}

	return body, nil
}
