package htmlgen

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/ghzgod/shuck-stop/grade"
	"github.com/ghzgod/shuck-stop/models"
	"github.com/ghzgod/shuck-stop/normalize"
)

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// RenderOptions carries the only non-deterministic input of the page.
// Leave GeneratedAt empty to omit the timestamp line entirely.
type RenderOptions struct {
	GeneratedAt string
}

// Render produces the complete comparison page for a table. Pure
// function: the same table and options always yield the same document.
func Render(table normalize.ComparisonTable, opts RenderOptions) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, buildPage(table, opts)); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

type pageData struct {
	GeneratedAt string
	TotalDrives int
	Summary     []summaryCard
	Rows        []rowData
	Legend      []legendEntry
}

type summaryCard struct {
	CapacityTB int
	Price      string
	PricePerTB string
	GradeLabel string
	GradeClass string
	Retailer   string
	Model      string
	URL        string
}

type rowData struct {
	CapacityTB int
	Model      string
	Source     string
	Retailer   string
	Price      string
	PricePerTB string
	GradeClass string
	Available  bool
	IsBest     bool
	URL        string
	LowestEver string
}

type legendEntry struct {
	Label string
	Class string
	Color string
	Bound string
}

func buildPage(table normalize.ComparisonTable, opts RenderOptions) pageData {
	page := pageData{
		GeneratedAt: opts.GeneratedAt,
		TotalDrives: table.TotalDrives(),
		Legend:      buildLegend(),
	}

	for _, group := range table.Groups {
		if group.Best != nil {
			page.Summary = append(page.Summary, buildCard(group.CapacityTB, *group.Best))
		}
		for _, d := range group.Drives {
			page.Rows = append(page.Rows, buildRow(group, d))
		}
	}

	return page
}

func buildCard(tier int, best models.DrivePrice) summaryCard {
	g := grade.ForPricePerTB(best.PricePerTB)
	return summaryCard{
		CapacityTB: tier,
		Price:      dollars(best.Price),
		PricePerTB: dollars(best.PricePerTB),
		GradeLabel: g.Label,
		GradeClass: g.Class,
		Retailer:   best.Retailer,
		Model:      best.Model,
		URL:        best.URL,
	}
}

func buildRow(group normalize.CapacityGroup, d models.DrivePrice) rowData {
	row := rowData{
		CapacityTB: group.CapacityTB,
		Model:      d.Model,
		Source:     d.Source,
		Retailer:   d.Retailer,
		Price:      dollars(d.Price),
		PricePerTB: dollars(d.PricePerTB),
		GradeClass: grade.ForPricePerTB(d.PricePerTB).Class,
		Available:  d.Available,
		IsBest:     group.Best != nil && *group.Best == d,
		URL:        d.URL,
	}
	if d.LowestEver > 0 {
		row.LowestEver = dollars(d.LowestEver)
		if d.LowestEverDate != "" {
			row.LowestEver += " (" + d.LowestEverDate + ")"
		}
	}
	return row
}

func buildLegend() []legendEntry {
	grades := grade.All()
	bounds := []string{"≤ $12/TB", "≤ $13/TB", "≤ $15/TB", "≤ $17/TB", "≤ $20/TB", "> $20/TB"}
	legend := make([]legendEntry, len(grades))
	for i, g := range grades {
		legend[i] = legendEntry{Label: g.Label, Class: g.Class, Color: g.Color, Bound: bounds[i]}
	}
	return legend
}

func dollars(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
