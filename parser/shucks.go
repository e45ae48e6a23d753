package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ghzgod/shuck-stop/models"
)

// retailerNames maps the column keys detected in the table header to
// display names.
var retailerNames = map[string]string{
	"amazon":  "Amazon",
	"bestbuy": "Best Buy",
	"bh":      "B&H Photo",
	"ebay":    "eBay",
	"newegg":  "Newegg",
}

var wholeTBRe = regexp.MustCompile(`(\d+)\s*TB`)

// ShucksParser extracts drive prices from the shucks.top front page.
// The page is one big table: a row per drive model, a column per
// retailer, plus a lowest-ever-price column for historical context.
type ShucksParser struct{}

// NewShucksParser creates a new ShucksParser instance
func NewShucksParser() *ShucksParser {
	return &ShucksParser{}
}

// Parse extracts one DrivePrice per (drive row, retailer column) pair
// that actually carries a price.
func (p *ShucksParser) Parse(htmlContent string) ([]models.DrivePrice, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseError{Source: models.SourceShucks, Detail: err.Error()}
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, &ParseError{Source: models.SourceShucks, Detail: "no table found"}
	}

	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		return nil, &ParseError{Source: models.SourceShucks, Detail: "table has no header row"}
	}
	headers := p.parseHeaders(headerRow)

	tbody := table.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, &ParseError{Source: models.SourceShucks, Detail: "table has no body"}
	}

	var drives []models.DrivePrice

	tbody.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		capMatch := wholeTBRe.FindStringSubmatch(strings.TrimSpace(cells.Eq(0).Text()))
		if capMatch == nil {
			return
		}
		capacityTB, _ := strconv.Atoi(capMatch[1])
		model := strings.TrimSpace(cells.Eq(1).Text())

		// Lowest-ever price lives in the 8th cell when present
		var lowestEver float64
		var lowestEverDate string
		if cells.Length() >= 8 {
			lowestCell := cells.Eq(7)
			lowestEver = parsePrice(strings.TrimSpace(lowestCell.Find("p").First().Text()))
			lowestEverDate = strings.TrimSpace(lowestCell.Find("p.ago").First().Text())
		}

		// Columns 2-6 hold the per-retailer offers
		for idx := 2; idx <= 6 && idx < cells.Length(); idx++ {
			if idx >= len(headers) {
				continue
			}
			retailer, ok := retailerNames[headers[idx]]
			if !ok {
				continue
			}

			cell := cells.Eq(idx)
			link := cell.Find("a").First()
			if link.Length() == 0 {
				continue
			}

			linkText := strings.TrimSpace(link.Text())
			// "check" links carry no price
			if strings.EqualFold(linkText, "check") {
				continue
			}

			price := parsePrice(linkText)
			if price <= 0 {
				continue
			}

			drive := models.NewDrivePrice(
				float64(capacityTB), model, models.SourceShucks, retailer,
				price, link.AttrOr("href", ""),
			)
			drive.Available = !cell.HasClass("oos")
			drive.LowestEver = lowestEver
			drive.LowestEverDate = lowestEverDate
			drives = append(drives, drive)
		}
	})

	return drives, nil
}

// parseHeaders maps each header cell to a retailer key. Retailer
// columns are icons, so identification falls back to the brand colors
// embedded in the SVG markup when there is no usable text.
func (p *ShucksParser) parseHeaders(headerRow *goquery.Selection) []string {
	var headers []string
	headerRow.Find("th").Each(func(_ int, th *goquery.Selection) {
		svg := th.Find("svg")
		if svg.Length() > 0 {
			svgHTML, _ := goquery.OuterHtml(svg)
			headers = append(headers, retailerFromSVG(svgHTML))
			return
		}
		text := strings.ToLower(strings.TrimSpace(th.Text()))
		if text == "" {
			text = "unknown"
		}
		headers = append(headers, text)
	})
	return headers
}

// retailerFromSVG guesses the retailer from icon markup using either an
// explicit name or the retailer's brand color.
func retailerFromSVG(svgHTML string) string {
	lower := strings.ToLower(svgHTML)
	switch {
	case strings.Contains(lower, "amazon") || strings.Contains(lower, "f90"):
		return "amazon"
	case strings.Contains(lower, "bestbuy") || strings.Contains(lower, "ffed31"):
		return "bestbuy"
	case strings.Contains(lower, "bf291a") || strings.Contains(svgHTML, "PHOTO"):
		return "bh"
	case strings.Contains(lower, "ebay") || strings.Contains(lower, "e53238"):
		return "ebay"
	case strings.Contains(lower, "newegg") || strings.Contains(lower, "f7ed1a"):
		return "newegg"
	default:
		return "unknown"
	}
}
