// Package insights computes the descriptive statistics behind the
// dashboard sections: cuisine counts, city rankings, price-range
// distribution, delivery split, geographic extent. Every function is a
// pure pass over an immutable dataset snapshot.
package insights

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/platewise/internal/dataset"
)

// CuisineCount is one cuisine with its restaurant count and share of
// distinct restaurant names.
type CuisineCount struct {
	Cuisine string  `json:"cuisine" yaml:"cuisine"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// TopCuisines explodes the comma-separated cuisine lists, counts each
// cuisine once per record, and returns the n most common. Percent is
// relative to the number of distinct restaurant names, matching how the
// share is usually quoted for this dataset. n <= 0 returns all.
func TopCuisines(ds *dataset.Dataset, n int) []CuisineCount {
	counts := make(map[string]int)
	names := make(map[string]struct{})
	for _, r := range ds.Records {
		if r.Name != "" {
			names[strings.ToLower(r.Name)] = struct{}{}
		}
		seen := make(map[string]struct{}, len(r.Cuisines))
		for _, c := range r.Cuisines {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			counts[c]++
		}
	}
	out := make([]CuisineCount, 0, len(counts))
	for c, cnt := range counts {
		cc := CuisineCount{Cuisine: c, Count: cnt}
		if len(names) > 0 {
			cc.Percent = float64(cnt) * 100 / float64(len(names))
		}
		out = append(out, cc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cuisine < out[j].Cuisine
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
