package filter

import (
	"testing"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/models"
)

func TestIsMajorBrand(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		expected bool
	}{
		{"wd easystore", "WD easystore 14TB External USB 3.0", true},
		{"wd elements", "Western Digital 14TB Elements Desktop", true},
		{"wd my book", "WD 18TB My Book Desktop External Hard Drive", true},
		{"seagate expansion", "Seagate Expansion 16TB External Hard Drive", true},
		{"seagate one touch", "Seagate One Touch Hub 20TB", true},
		{"backup plus", "Backup Plus Hub 10TB", true},
		{"toshiba canvio excluded", "Toshiba Canvio Basics 4TB", false},
		{"lacie excluded", "LaCie Rugged Mini 5TB", false},
		{"g-drive excluded despite wd ownership", "SanDisk Professional G-DRIVE 18TB", false},
		{"avolusion excluded", "Avolusion HDDGear Pro 12TB", false},
		{"sabrent excluded", "Sabrent 10TB External Drive", false},
		{"unknown brand", "Generic USB Drive 8TB", false},
		{"empty model", "", false},
	}

	f := NewFilter(config.GetDefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsMajorBrand(tt.model); got != tt.expected {
				t.Errorf("IsMajorBrand(%q) = %v, want %v", tt.model, got, tt.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	drives := []models.DrivePrice{
		models.NewDrivePrice(14, "WD easystore 14TB", models.SourceShucks, "Best Buy", 200, ""),
		models.NewDrivePrice(14, "LaCie Rugged 14TB", models.SourceDiskPrices, "Amazon", 300, ""),
		models.NewDrivePrice(16, "Seagate Expansion 16TB", models.SourceDiskPrices, "Amazon", 230, ""),
	}

	filtered := NewFilter(config.GetDefaultConfig()).Apply(drives)

	if len(filtered) != 2 {
		t.Fatalf("Apply() kept %d drives, want 2", len(filtered))
	}
	for _, d := range filtered {
		if d.Model == "LaCie Rugged 14TB" {
			t.Errorf("Apply() kept excluded brand %q", d.Model)
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	if got := NewFilter(config.GetDefaultConfig()).Apply(nil); got != nil {
		t.Errorf("Apply(nil) = %v, want nil", got)
	}
}
