package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ghzgod/shuck-stop/models"
)

// diskprices.com column layout (by index):
// 0 hidden sort value, 1 price per TB, 2 price, 3 capacity, 4 warranty,
// 5 type, 6 subtype, 7 condition, 8 product name with retailer link.
const diskPricesMinCells = 9

var capacityTokenRe = regexp.MustCompile(`\d+\s*TB`)

// DiskPricesParser extracts external HDD offers from a diskprices.com
// listing page. The page mixes in SSDs, tape and internal drives, so
// the parser drops anything that is not an external HDD sold on Amazon.
type DiskPricesParser struct {
	minCapacityTB float64
}

// NewDiskPricesParser creates a new DiskPricesParser instance.
// Offers below minCapacityTB are dropped.
func NewDiskPricesParser(minCapacityTB int) *DiskPricesParser {
	return &DiskPricesParser{minCapacityTB: float64(minCapacityTB)}
}

// Parse extracts one DrivePrice per listing row, deduplicated by
// product URL.
func (p *DiskPricesParser) Parse(htmlContent string) ([]models.DrivePrice, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ParseError{Source: models.SourceDiskPrices, Detail: err.Error()}
	}

	if doc.Find("table").Length() == 0 {
		return nil, &ParseError{Source: models.SourceDiskPrices, Detail: "no tables found"}
	}

	var drives []models.DrivePrice
	seenURLs := make(map[string]bool)

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < diskPricesMinCells {
			return
		}

		link := cells.Eq(8).Find("a").First()
		if link.Length() == 0 {
			return
		}
		href := link.AttrOr("href", "")
		// Only Amazon offers; diskprices occasionally mixes in others
		if !strings.Contains(strings.ToLower(href), "amazon") {
			return
		}

		capacity := parseCapacityTB(strings.TrimSpace(cells.Eq(3).Text()))
		if capacity <= 0 || capacity < p.minCapacityTB {
			return
		}

		price := parsePrice(strings.TrimSpace(cells.Eq(2).Text()))
		// A listing under $10 is never a real drive at these capacities
		if price < 10 {
			return
		}

		diskType := strings.TrimSpace(cells.Eq(5).Text())
		subtype := strings.TrimSpace(cells.Eq(6).Text())
		condition := strings.TrimSpace(cells.Eq(7).Text())

		if strings.Contains(strings.ToUpper(subtype), "SSD") ||
			strings.Contains(strings.ToUpper(diskType), "TAPE") {
			return
		}
		if !strings.Contains(diskType, "External") {
			return
		}

		if seenURLs[href] {
			return
		}
		seenURLs[href] = true

		drive := models.NewDrivePrice(
			capacity, cleanModelName(link.Text()), models.SourceDiskPrices,
			"Amazon", price, href,
		)
		drive.Condition = condition
		drive.DiskType = strings.TrimSpace(diskType + " " + subtype)
		drives = append(drives, drive)
	})

	return drives, nil
}

// cleanModelName strips the capacity token out of a product title and
// truncates the marketing fluff Amazon titles tend to carry.
func cleanModelName(model string) string {
	cleaned := strings.TrimSpace(capacityTokenRe.ReplaceAllString(strings.TrimSpace(model), ""))
	if len(cleaned) < 3 {
		cleaned = "External HDD"
	}
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	return cleaned
}
