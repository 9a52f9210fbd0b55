package insights

import (
	"sort"

	"github.com/KaramelBytes/platewise/internal/chains"
	"github.com/KaramelBytes/platewise/internal/dataset"
)

// CityStat summarizes one city: restaurant count and mean rating over
// its rated records.
type CityStat struct {
	City      string  `json:"city" yaml:"city"`
	Count     int     `json:"count" yaml:"count"`
	Rated     int     `json:"rated" yaml:"rated"`
	AvgRating float64 `json:"avg_rating" yaml:"avg_rating"`
}

// CityStats aggregates per city, ordered by restaurant count descending
// then city name ascending. Records without a city are ignored. The
// rating sentinel is excluded from means, same as in chain metrics.
func CityStats(ds *dataset.Dataset) []CityStat {
	type acc struct {
		count int
		rated int
		sum   float64
	}
	byCity := make(map[string]*acc)
	for _, r := range ds.Records {
		if r.City == "" {
			continue
		}
		a := byCity[r.City]
		if a == nil {
			a = &acc{}
			byCity[r.City] = a
		}
		a.count++
		if r.Rating > chains.RatingSentinel {
			a.rated++
			a.sum += r.Rating
		}
	}
	out := make([]CityStat, 0, len(byCity))
	for city, a := range byCity {
		s := CityStat{City: city, Count: a.count, Rated: a.rated}
		if a.rated > 0 {
			s.AvgRating = a.sum / float64(a.rated)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	return out
}

// TopByRating reorders city stats by mean rating descending, breaking
// ties by count descending then city ascending. Cities with no rated
// records sort last.
func TopByRating(stats []CityStat) []CityStat {
	out := make([]CityStat, len(stats))
	copy(out, stats)
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	return out
}
