package filter

import (
	"strings"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/models"
)

// Filter keeps only drives from trusted shuckable brands
type Filter struct {
	cfg *config.Config
}

// NewFilter creates a new Filter instance
func NewFilter(cfg *config.Config) *Filter {
	return &Filter{
		cfg: cfg,
	}
}

// Apply filters drives down to major-brand models (Seagate and WD
// lines by default)
func (f *Filter) Apply(drives []models.DrivePrice) []models.DrivePrice {
	var filtered []models.DrivePrice

	for _, drive := range drives {
		if f.IsMajorBrand(drive.Model) {
			filtered = append(filtered, drive)
		}
	}

	return filtered
}

// IsMajorBrand checks whether a drive model belongs to an allowed
// brand. Exclusion keywords win over the allow list, so "Toshiba
// Canvio" stays out even though plain "wd" would match.
func (f *Filter) IsMajorBrand(model string) bool {
	modelLower := strings.ToLower(model)

	for _, excluded := range f.cfg.Filters.ExcludedKeywords {
		if strings.Contains(modelLower, excluded) {
			return false
		}
	}

	for _, brand := range f.cfg.Filters.AllowedBrands {
		if strings.Contains(modelLower, brand) {
			return true
		}
	}

	return false
}
