package insights

import (
	"strings"

	"github.com/KaramelBytes/platewise/internal/dataset"
)

// PriceBand is one step of the 1..4 price-range ordinal with its count
// and share of priced records.
type PriceBand struct {
	Range   int     `json:"range" yaml:"range"`
	Label   string  `json:"label" yaml:"label"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// PriceDistribution counts records per price range. All four bands are
// always present, in order, so the histogram shape is stable even when a
// band is empty. Records without a price range are excluded from both
// counts and percentages.
func PriceDistribution(ds *dataset.Dataset) []PriceBand {
	var counts [5]int
	total := 0
	for _, r := range ds.Records {
		if r.PriceRange >= 1 && r.PriceRange <= 4 {
			counts[r.PriceRange]++
			total++
		}
	}
	out := make([]PriceBand, 0, 4)
	for rng := 1; rng <= 4; rng++ {
		b := PriceBand{Range: rng, Label: strings.Repeat("$", rng), Count: counts[rng]}
		if total > 0 {
			b.Percent = float64(counts[rng]) * 100 / float64(total)
		}
		out = append(out, b)
	}
	return out
}
