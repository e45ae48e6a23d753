package grade

// Grade is a value rating for a price-per-TB figure
type Grade struct {
	Label string
	Class string // CSS class used by the generated page
	Color string
}

// Fixed $/TB grading scale. Thresholds are upper bounds, checked in
// order.
var scale = []struct {
	maxPricePerTB float64
	grade         Grade
}{
	{12, Grade{Label: "Excellent", Class: "grade-excellent", Color: "#1a7f37"}},
	{13, Grade{Label: "Great", Class: "grade-great", Color: "#4caf50"}},
	{15, Grade{Label: "Good", Class: "grade-good", Color: "#8bc34a"}},
	{17, Grade{Label: "Fair", Class: "grade-fair", Color: "#fbc02d"}},
	{20, Grade{Label: "Meh", Class: "grade-meh", Color: "#f57c00"}},
}

var worst = Grade{Label: "Bad", Class: "grade-bad", Color: "#c62828"}

// ForPricePerTB grades a $/TB value. Pure and deterministic: the same
// input always yields the same grade.
func ForPricePerTB(pricePerTB float64) Grade {
	for _, s := range scale {
		if pricePerTB <= s.maxPricePerTB {
			return s.grade
		}
	}
	return worst
}

// All returns the full scale from best to worst, for rendering the
// page legend.
func All() []Grade {
	grades := make([]Grade, 0, len(scale)+1)
	for _, s := range scale {
		grades = append(grades, s.grade)
	}
	return append(grades, worst)
}
