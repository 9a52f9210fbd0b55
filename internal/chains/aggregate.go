package chains

import (
	"math"
	"sort"

	"github.com/KaramelBytes/platewise/internal/dataset"
)

// RatingSentinel marks a record as not yet rated. Sentinel ratings are
// excluded from the mean and standard deviation; the record's votes and
// city still count.
const RatingSentinel = 0.0

// Metrics is the read-only performance summary of one chain, computed
// fresh per analysis run.
type Metrics struct {
	Name         string  `json:"name" yaml:"name"`
	Outlets      int     `json:"outlets" yaml:"outlets"`
	Cities       int     `json:"cities" yaml:"cities"`
	AvgRating    float64 `json:"avg_rating" yaml:"avg_rating"`
	RatingStdDev float64 `json:"rating_stddev" yaml:"rating_stddev"`
	MinRating    float64 `json:"min_rating" yaml:"min_rating"`
	MaxRating    float64 `json:"max_rating" yaml:"max_rating"`
	TotalVotes   int     `json:"total_votes" yaml:"total_votes"`
	AvgVotes     float64 `json:"avg_votes" yaml:"avg_votes"`
}

// Aggregate computes Metrics for every chain group. The result is
// ordered by outlet count descending, then name ascending, so repeated
// runs over the same input are byte-identical.
func Aggregate(groups map[string][]dataset.Record) []Metrics {
	out := make([]Metrics, 0, len(groups))
	for name, members := range groups {
		out = append(out, aggregateOne(name, members))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Outlets != out[j].Outlets {
			return out[i].Outlets > out[j].Outlets
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func aggregateOne(name string, members []dataset.Record) Metrics {
	m := Metrics{Name: name, Outlets: len(members)}
	cities := make(map[string]struct{})
	var rated []float64
	var sum float64
	for _, r := range members {
		if r.City != "" {
			cities[r.City] = struct{}{}
		}
		m.TotalVotes += r.Votes
		if r.Rating > RatingSentinel {
			rated = append(rated, r.Rating)
			sum += r.Rating
		}
	}
	m.Cities = len(cities)
	if m.Outlets > 0 {
		m.AvgVotes = float64(m.TotalVotes) / float64(m.Outlets)
	}
	if len(rated) > 0 {
		m.AvgRating = sum / float64(len(rated))
		m.MinRating = rated[0]
		m.MaxRating = rated[0]
		for _, x := range rated[1:] {
			if x < m.MinRating {
				m.MinRating = x
			}
			if x > m.MaxRating {
				m.MaxRating = x
			}
		}
	}
	// population stddev over the rated subset; 0 under two samples
	if len(rated) >= 2 {
		var m2 float64
		for _, x := range rated {
			d := x - m.AvgRating
			m2 += d * d
		}
		m.RatingStdDev = math.Sqrt(m2 / float64(len(rated)))
	}
	return m
}

// MostWidespread returns the chain covering the most distinct cities.
// Ties break by outlet count descending, then name ascending.
func MostWidespread(metrics []Metrics) (Metrics, error) {
	return pick(metrics, func(a, b Metrics) bool {
		if a.Cities != b.Cities {
			return a.Cities > b.Cities
		}
		if a.Outlets != b.Outlets {
			return a.Outlets > b.Outlets
		}
		return a.Name < b.Name
	})
}

// BestRated returns the chain with the highest average rating. Ties
// break by total votes descending, then name ascending.
func BestRated(metrics []Metrics) (Metrics, error) {
	return pick(metrics, func(a, b Metrics) bool {
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		if a.TotalVotes != b.TotalVotes {
			return a.TotalVotes > b.TotalVotes
		}
		return a.Name < b.Name
	})
}

// MostPopular returns the chain with the most total votes. Ties break
// by average rating descending, then name ascending.
func MostPopular(metrics []Metrics) (Metrics, error) {
	return pick(metrics, func(a, b Metrics) bool {
		if a.TotalVotes != b.TotalVotes {
			return a.TotalVotes > b.TotalVotes
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		return a.Name < b.Name
	})
}

func pick(metrics []Metrics, less func(a, b Metrics) bool) (Metrics, error) {
	if len(metrics) == 0 {
		return Metrics{}, ErrEmptyInput
	}
	best := metrics[0]
	for _, m := range metrics[1:] {
		if less(m, best) {
			best = m
		}
	}
	return best, nil
}
