package htmlgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/models"
	"github.com/ghzgod/shuck-stop/normalize"
)

func sampleTable() normalize.ComparisonTable {
	oos := models.NewDrivePrice(8, "WD easystore", models.SourceShucks, "Best Buy", 125, "https://bestbuy.example/easystore")
	oos.Available = false

	best14 := models.NewDrivePrice(14, "WD Elements Desktop", models.SourceShucks, "Amazon", 199.99, "https://amazon.example/elements")
	best14.LowestEver = 189.99
	best14.LowestEverDate = "3 months ago"

	return normalize.NewNormalizer(config.GetDefaultConfig()).Build([]models.DrivePrice{
		models.NewDrivePrice(8, "Seagate Expansion", models.SourceDiskPrices, "Amazon", 115, "https://amazon.example/expansion"),
		oos,
		best14,
		models.NewDrivePrice(14, "Seagate One Touch", models.SourceDiskPrices, "Amazon", 290, "https://amazon.example/onetouch"),
	})
}

func TestRenderContainsSummaryAndTable(t *testing.T) {
	page, err := Render(sampleTable(), RenderOptions{})
	require.NoError(t, err)

	require.Contains(t, page, "<!DOCTYPE html>")
	require.Contains(t, page, "Best Deals by Capacity")

	// 8TB best: $115 at $14.38/TB, graded Good
	require.Contains(t, page, "$115.00")
	require.Contains(t, page, "$14.38")
	require.Contains(t, page, "grade-good")

	// 14TB best: $199.99 at $14.29/TB
	require.Contains(t, page, "$199.99")
	require.Contains(t, page, "$14.29")

	// full table rows
	require.Contains(t, page, "WD easystore")
	require.Contains(t, page, "Out of stock")
	require.Contains(t, page, "Seagate One Touch")
	require.Contains(t, page, "grade-bad") // 290/14 = $20.71/TB
	require.Contains(t, page, "$189.99 (3 months ago)")
	require.Contains(t, page, `href="https://amazon.example/expansion"`)

	// legend
	require.Contains(t, page, "Excellent")
	require.Contains(t, page, "Meh")
}

func TestRenderDeterministic(t *testing.T) {
	table := sampleTable()
	opts := RenderOptions{GeneratedAt: "2024-01-02 03:04 UTC"}

	first, err := Render(table, opts)
	require.NoError(t, err)
	second, err := Render(table, opts)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRenderGeneratedAt(t *testing.T) {
	withTimestamp, err := Render(sampleTable(), RenderOptions{GeneratedAt: "2024-01-02 03:04 UTC"})
	require.NoError(t, err)
	require.Contains(t, withTimestamp, "Generated at 2024-01-02 03:04 UTC")

	without, err := Render(sampleTable(), RenderOptions{})
	require.NoError(t, err)
	require.NotContains(t, without, "Generated at")
}

func TestRenderEmptyTable(t *testing.T) {
	page, err := Render(normalize.ComparisonTable{}, RenderOptions{})
	require.NoError(t, err)

	require.Contains(t, page, "All Drives (0)")
	require.NotContains(t, page, "<td>") // no rows rendered
}

func TestRenderEscapesModelNames(t *testing.T) {
	hostile := models.NewDrivePrice(14, `WD <script>alert("x")</script>`, models.SourceShucks, "Amazon", 199, "")
	table := normalize.ComparisonTable{
		Groups: []normalize.CapacityGroup{{CapacityTB: 14, Drives: []models.DrivePrice{hostile}, Best: &hostile}},
	}

	page, err := Render(table, RenderOptions{})
	require.NoError(t, err)
	require.NotContains(t, page, `<script>alert`)
	require.True(t, strings.Contains(page, "&lt;script&gt;"))
}
