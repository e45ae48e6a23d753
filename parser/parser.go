package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError indicates the page structure of a source changed and no
// longer matches what the parser expects.
type ParseError struct {
	Source string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Source, e.Detail)
}

var (
	priceRe      = regexp.MustCompile(`\$?([\d]+\.?\d*)`)
	capacityTBRe = regexp.MustCompile(`(?i)([\d.]+)\s*TB`)
	capacityGBRe = regexp.MustCompile(`(?i)([\d.]+)\s*GB`)
)

// parsePrice extracts a numeric price from strings like "$234.99" or
// "$1,234". Returns 0 when no price is present (e.g. "—" placeholders).
func parsePrice(text string) float64 {
	if text == "" || text == "—" {
		return 0
	}
	cleaned := strings.ReplaceAll(text, ",", "")
	match := priceRe.FindStringSubmatch(cleaned)
	if match == nil {
		return 0
	}
	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return price
}

// parseCapacityTB parses capacity strings like "8 TB", "12TB" or
// "500 GB" into a TB value. Returns 0 when no capacity is found.
func parseCapacityTB(text string) float64 {
	if match := capacityTBRe.FindStringSubmatch(text); match != nil {
		if tb, err := strconv.ParseFloat(match[1], 64); err == nil {
			return tb
		}
	}
	if match := capacityGBRe.FindStringSubmatch(text); match != nil {
		if gb, err := strconv.ParseFloat(match[1], 64); err == nil {
			return gb / 1000
		}
	}
	return 0
}
