package chains

import (
	"github.com/KaramelBytes/platewise/internal/dataset"
)

// MinOutlets is the default membership threshold: a name must appear at
// least this many times to count as a chain.
const MinOutlets = 2

// Identify partitions records by normalized name and keeps the groups
// with at least minOutlets members. Records whose name normalizes to the
// empty string are excluded from grouping entirely. Input order is
// preserved within each bucket; minOutlets below 2 is raised to 2.
func Identify(records []dataset.Record, minOutlets int) map[string][]dataset.Record {
	if minOutlets < MinOutlets {
		minOutlets = MinOutlets
	}
	buckets := make(map[string][]dataset.Record)
	for _, r := range records {
		key := Normalize(r.Name)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], r)
	}
	for key, members := range buckets {
		if len(members) < minOutlets {
			delete(buckets, key)
		}
	}
	return buckets
}
