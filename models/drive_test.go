package models

import "testing"

func TestNewDrivePrice(t *testing.T) {
	d := NewDrivePrice(8, "WD Elements", SourceShucks, "Amazon", 120, "https://amazon.example/a")

	if d.PricePerTB != 15 {
		t.Errorf("PricePerTB = %v, want 15", d.PricePerTB)
	}
	if !d.Available {
		t.Error("new drives should default to available")
	}
	if d.Source != SourceShucks {
		t.Errorf("Source = %q, want %q", d.Source, SourceShucks)
	}
}

func TestNewDrivePriceRoundsToCents(t *testing.T) {
	tests := []struct {
		name       string
		capacityTB float64
		price      float64
		expected   float64
	}{
		{"exact", 10, 180, 18},
		{"half cent rounds up", 8, 115, 14.38}, // 14.375
		{"repeating", 14, 199.99, 14.29},       // 14.2850
		{"thirds", 12, 100, 8.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrivePrice(tt.capacityTB, "m", SourceDiskPrices, "Amazon", tt.price, "")
			if d.PricePerTB != tt.expected {
				t.Errorf("PricePerTB = %v, want %v", d.PricePerTB, tt.expected)
			}
		})
	}
}

func TestNewDrivePriceInvalidInputs(t *testing.T) {
	if d := NewDrivePrice(0, "m", SourceShucks, "Amazon", 100, ""); d.PricePerTB != 0 {
		t.Errorf("zero capacity should leave PricePerTB unset, got %v", d.PricePerTB)
	}
	if d := NewDrivePrice(8, "m", SourceShucks, "Amazon", 0, ""); d.PricePerTB != 0 {
		t.Errorf("zero price should leave PricePerTB unset, got %v", d.PricePerTB)
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		name       string
		capacityTB float64
		expected   int
	}{
		{"whole", 8, 8},
		{"just above", 10.2, 10},
		{"just below", 11.8, 12},
		{"halfway rounds up", 9.5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrivePrice(tt.capacityTB, "m", SourceShucks, "Amazon", 100, "")
			if got := d.Tier(); got != tt.expected {
				t.Errorf("Tier() = %d, want %d", got, tt.expected)
			}
		})
	}
}
