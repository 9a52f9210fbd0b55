package insights

import (
	"github.com/KaramelBytes/platewise/internal/chains"
	"github.com/KaramelBytes/platewise/internal/dataset"
)

// DeliverySide is one half of the online-delivery split.
type DeliverySide struct {
	Count     int     `json:"count" yaml:"count"`
	Percent   float64 `json:"percent" yaml:"percent"`
	Rated     int     `json:"rated" yaml:"rated"`
	AvgRating float64 `json:"avg_rating" yaml:"avg_rating"`
}

// DeliverySplit compares restaurants with and without online delivery.
type DeliverySplit struct {
	With    DeliverySide `json:"with" yaml:"with"`
	Without DeliverySide `json:"without" yaml:"without"`
}

// Delivery splits the dataset by the online-delivery flag and computes
// mean ratings for both sides, sentinel excluded.
func Delivery(ds *dataset.Dataset) DeliverySplit {
	var split DeliverySplit
	var sumWith, sumWithout float64
	for _, r := range ds.Records {
		side := &split.Without
		sum := &sumWithout
		if r.OnlineDelivery {
			side = &split.With
			sum = &sumWith
		}
		side.Count++
		if r.Rating > chains.RatingSentinel {
			side.Rated++
			*sum += r.Rating
		}
	}
	total := split.With.Count + split.Without.Count
	if total > 0 {
		split.With.Percent = float64(split.With.Count) * 100 / float64(total)
		split.Without.Percent = float64(split.Without.Count) * 100 / float64(total)
	}
	if split.With.Rated > 0 {
		split.With.AvgRating = sumWith / float64(split.With.Rated)
	}
	if split.Without.Rated > 0 {
		split.Without.AvgRating = sumWithout / float64(split.Without.Rated)
	}
	return split
}
