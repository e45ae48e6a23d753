package models

import "math"

// Source identifiers for scraped records
const (
	SourceShucks     = "shucks.top"
	SourceDiskPrices = "diskprices.com"
)

// DrivePrice represents a single hard drive offer found on one of the
// price sources. It is a value type: construct it with NewDrivePrice
// and never mutate it afterwards.
type DrivePrice struct {
	CapacityTB float64
	Model      string
	Source     string // SourceShucks or SourceDiskPrices
	Retailer   string
	Price      float64
	URL        string
	PricePerTB float64 // derived: Price / CapacityTB, rounded to cents
	Available  bool

	// shucks.top historical context (zero values mean unknown)
	LowestEver     float64
	LowestEverDate string

	// diskprices.com extra columns
	Condition string
	DiskType  string
}

// NewDrivePrice builds a DrivePrice and computes its price per terabyte.
func NewDrivePrice(capacityTB float64, model, source, retailer string, price float64, url string) DrivePrice {
	d := DrivePrice{
		CapacityTB: capacityTB,
		Model:      model,
		Source:     source,
		Retailer:   retailer,
		Price:      price,
		URL:        url,
		Available:  true,
	}
	if price > 0 && capacityTB > 0 {
		d.PricePerTB = math.Round(price/capacityTB*100) / 100
	}
	return d
}

// Tier returns the capacity tier this drive belongs to: the nearest
// whole-TB bucket. A 10.0TB and a 10.2TB drive land in the same tier.
func (d DrivePrice) Tier() int {
	return int(math.Round(d.CapacityTB))
}
