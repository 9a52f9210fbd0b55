package insights

import (
	"github.com/KaramelBytes/platewise/internal/dataset"
)

// GeoExtent is the bounding box and centroid of the records that carry
// coordinates, the input a map layer needs to frame its view.
type GeoExtent struct {
	Points    int     `json:"points" yaml:"points"`
	MinLat    float64 `json:"min_lat" yaml:"min_lat"`
	MaxLat    float64 `json:"max_lat" yaml:"max_lat"`
	MinLng    float64 `json:"min_lng" yaml:"min_lng"`
	MaxLng    float64 `json:"max_lng" yaml:"max_lng"`
	CenterLat float64 `json:"center_lat" yaml:"center_lat"`
	CenterLng float64 `json:"center_lng" yaml:"center_lng"`
}

// Geo computes the extent over records with coordinates. ok is false
// when no record carries usable coordinates; datasets without geo
// columns simply skip the map section.
func Geo(ds *dataset.Dataset) (GeoExtent, bool) {
	var e GeoExtent
	var sumLat, sumLng float64
	for _, r := range ds.Records {
		if !r.HasCoordinates() {
			continue
		}
		lat, lng := *r.Latitude, *r.Longitude
		if e.Points == 0 {
			e.MinLat, e.MaxLat = lat, lat
			e.MinLng, e.MaxLng = lng, lng
		} else {
			if lat < e.MinLat {
				e.MinLat = lat
			}
			if lat > e.MaxLat {
				e.MaxLat = lat
			}
			if lng < e.MinLng {
				e.MinLng = lng
			}
			if lng > e.MaxLng {
				e.MaxLng = lng
			}
		}
		sumLat += lat
		sumLng += lng
		e.Points++
	}
	if e.Points == 0 {
		return GeoExtent{}, false
	}
	e.CenterLat = sumLat / float64(e.Points)
	e.CenterLng = sumLng / float64(e.Points)
	return e, true
}
