package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghzgod/shuck-stop/config"
	"github.com/ghzgod/shuck-stop/models"
)

// CapacityGroup holds every offer in one whole-TB capacity tier.
// Drives are sorted by price per TB ascending; Best points at the
// cheapest-per-TB offer that is actually in stock (nil when the whole
// tier is out of stock).
type CapacityGroup struct {
	CapacityTB int
	Drives     []models.DrivePrice
	Best       *models.DrivePrice
}

// ComparisonTable is the canonical merged price list, one group per
// capacity tier, ordered by capacity ascending.
type ComparisonTable struct {
	Groups []CapacityGroup
}

// TotalDrives returns the number of offers across all groups.
func (t ComparisonTable) TotalDrives() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Drives)
	}
	return n
}

// Normalizer merges per-source record sets into one ComparisonTable
type Normalizer struct {
	cfg *config.Config
}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{
		cfg: cfg,
	}
}

// Build merges the given record sets (one per source, order
// irrelevant, any of them may be empty) into a ComparisonTable:
// bucket to capacity tiers, deduplicate, sort, pick the best offer
// per tier.
func (n *Normalizer) Build(recordSets ...[]models.DrivePrice) ComparisonTable {
	var all []models.DrivePrice
	for _, set := range recordSets {
		all = append(all, set...)
	}

	all = n.dropBelowMinimum(all)
	all = n.dedupeExact(all)
	all = n.dedupeCrossSource(all)

	byTier := make(map[int][]models.DrivePrice)
	for _, d := range all {
		byTier[d.Tier()] = append(byTier[d.Tier()], d)
	}

	var tiers []int
	for tier := range byTier {
		tiers = append(tiers, tier)
	}
	sort.Ints(tiers)

	table := ComparisonTable{}
	for _, tier := range tiers {
		drives := byTier[tier]
		sort.SliceStable(drives, func(i, j int) bool {
			if drives[i].PricePerTB != drives[j].PricePerTB {
				return drives[i].PricePerTB < drives[j].PricePerTB
			}
			return drives[i].Price < drives[j].Price
		})

		group := CapacityGroup{CapacityTB: tier, Drives: drives}
		for i := range drives {
			if drives[i].Available && drives[i].PricePerTB > 0 {
				best := drives[i]
				group.Best = &best
				break
			}
		}
		table.Groups = append(table.Groups, group)
	}

	return table
}

// dropBelowMinimum removes offers whose capacity tier falls under the
// configured floor. Capacities that are not a clean whole-TB value are
// bucketed to the nearest tier rather than dropped.
func (n *Normalizer) dropBelowMinimum(drives []models.DrivePrice) []models.DrivePrice {
	var kept []models.DrivePrice
	for _, d := range drives {
		if d.Tier() >= n.cfg.Filters.MinCapacityTB {
			kept = append(kept, d)
		}
	}
	return kept
}

// dedupeExact collapses offers with the same (tier, model, retailer)
// key, keeping the lower-priced one. An in-stock offer beats an
// out-of-stock one at any price.
func (n *Normalizer) dedupeExact(drives []models.DrivePrice) []models.DrivePrice {
	seen := make(map[string]int) // key -> index into kept
	var kept []models.DrivePrice

	for _, d := range drives {
		key := fmt.Sprintf("%d|%s|%s", d.Tier(), strings.ToLower(d.Model), strings.ToLower(d.Retailer))
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(kept)
			kept = append(kept, d)
			continue
		}
		if preferOver(d, kept[idx]) {
			kept[idx] = d
		}
	}

	return kept
}

// dedupeCrossSource collapses what is almost certainly the same offer
// seen through both sources: same capacity tier, same retailer, price
// within the configured tolerance. The sources describe models
// differently ("WD Elements Desktop" vs the full Amazon title), so the
// model string cannot be part of this key.
func (n *Normalizer) dedupeCrossSource(drives []models.DrivePrice) []models.DrivePrice {
	tolerance := n.cfg.Filters.PriceTolerancePct
	if tolerance <= 0 {
		return drives
	}

	buckets := make(map[string][]models.DrivePrice)
	var order []string
	for _, d := range drives {
		key := fmt.Sprintf("%d|%s", d.Tier(), strings.ToLower(d.Retailer))
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], d)
	}

	var kept []models.DrivePrice
	for _, key := range order {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Price < bucket[j].Price
		})

		// Walk the price-sorted bucket pairing a record with the next
		// one when it comes from the other source at a near-equal
		// price. Same-source neighbors are distinct offers and are
		// never merged.
		for i := 0; i < len(bucket); {
			if i+1 < len(bucket) &&
				bucket[i+1].Source != bucket[i].Source &&
				bucket[i+1].Price <= bucket[i].Price*(1+tolerance/100) {
				kept = append(kept, pickPair(bucket[i], bucket[i+1]))
				i += 2
				continue
			}
			kept = append(kept, bucket[i])
			i++
		}
	}

	return kept
}

// preferOver reports whether candidate should replace current under
// the dedupe rules.
func preferOver(candidate, current models.DrivePrice) bool {
	if candidate.Price <= 0 || !candidate.Available {
		return false
	}
	if current.Price <= 0 || !current.Available {
		return true
	}
	return candidate.Price < current.Price
}

// pickPair selects which of two duplicate records to keep: the
// cheaper in-stock one, falling back to the cheaper overall. The
// arguments arrive price-sorted.
func pickPair(cheaper, other models.DrivePrice) models.DrivePrice {
	if !cheaper.Available && other.Available {
		return other
	}
	return cheaper
}
