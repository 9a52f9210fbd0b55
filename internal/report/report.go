// Package report assembles analysis results into a render-ready report
// and serializes it as Markdown, ASCII tables, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/platewise/internal/chains"
	"github.com/KaramelBytes/platewise/internal/dataset"
	"github.com/KaramelBytes/platewise/internal/insights"
)

// Options selects what goes into a report.
type Options struct {
	// MinOutlets is the chain membership threshold (minimum 2).
	MinOutlets int
	// TopN caps ranked sections (cuisines, cities, chains). 0 keeps all.
	TopN int
}

// DefaultOptions returns the thresholds the dashboard uses.
func DefaultOptions() Options {
	return Options{MinOutlets: chains.MinOutlets, TopN: 10}
}

// Report is one full analysis run over a dataset snapshot.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Source      string    `json:"source" yaml:"source"`
	Rows        int       `json:"rows" yaml:"rows"`
	Skipped     int       `json:"skipped" yaml:"skipped"`

	Chains     []chains.Metrics `json:"chains" yaml:"chains"`
	Widespread *chains.Metrics  `json:"most_widespread,omitempty" yaml:"most_widespread,omitempty"`
	TopRated   *chains.Metrics  `json:"best_rated,omitempty" yaml:"best_rated,omitempty"`
	Popular    *chains.Metrics  `json:"most_popular,omitempty" yaml:"most_popular,omitempty"`

	Cuisines []insights.CuisineCount `json:"cuisines,omitempty" yaml:"cuisines,omitempty"`
	Cities   []insights.CityStat     `json:"cities,omitempty" yaml:"cities,omitempty"`
	Prices   []insights.PriceBand    `json:"prices,omitempty" yaml:"prices,omitempty"`
	Delivery *insights.DeliverySplit `json:"delivery,omitempty" yaml:"delivery,omitempty"`
	Geo      *insights.GeoExtent     `json:"geo,omitempty" yaml:"geo,omitempty"`
}

// Build runs every analysis the dataset's columns support and assembles
// the report. It is a pure function of the snapshot apart from the run
// ID and timestamp.
func Build(ds *dataset.Dataset, opt Options) *Report {
	if opt.MinOutlets < chains.MinOutlets {
		opt.MinOutlets = chains.MinOutlets
	}
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      ds.Source,
		Rows:        ds.Len(),
		Skipped:     ds.Skipped,
	}

	groups := chains.Identify(ds.Records, opt.MinOutlets)
	metrics := chains.Aggregate(groups)
	if m, err := chains.MostWidespread(metrics); err == nil {
		r.Widespread = &m
	}
	if m, err := chains.BestRated(metrics); err == nil {
		r.TopRated = &m
	}
	if m, err := chains.MostPopular(metrics); err == nil {
		r.Popular = &m
	}
	if opt.TopN > 0 && len(metrics) > opt.TopN {
		metrics = metrics[:opt.TopN]
	}
	r.Chains = metrics

	if ds.Columns.Cuisines {
		r.Cuisines = insights.TopCuisines(ds, opt.TopN)
	}
	if ds.Columns.City {
		cities := insights.CityStats(ds)
		if opt.TopN > 0 && len(cities) > opt.TopN {
			cities = cities[:opt.TopN]
		}
		r.Cities = cities
	}
	if ds.Columns.PriceRange {
		r.Prices = insights.PriceDistribution(ds)
	}
	if ds.Columns.OnlineDelivery {
		split := insights.Delivery(ds)
		r.Delivery = &split
	}
	if ds.Columns.Geo {
		if ext, ok := insights.Geo(ds); ok {
			r.Geo = &ext
		}
	}
	return r
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}

// Markdown renders a compact report suitable for terminals or docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET]\n")
	if r.Source != "" {
		fmt.Fprintf(&b, "File: %s\n", r.Source)
	}
	fmt.Fprintf(&b, "Rows: %d\n", r.Rows)
	if r.Skipped > 0 {
		fmt.Fprintf(&b, "Skipped: %d (failed validation)\n", r.Skipped)
	}

	b.WriteString("\n[CHAINS]\n")
	if len(r.Chains) == 0 {
		b.WriteString("No restaurant chains detected in this dataset.\n")
	}
	for _, m := range r.Chains {
		fmt.Fprintf(&b, "- %s: %d outlets across %d cities — avg rating %.2f (±%.2f), votes %d\n",
			m.Name, m.Outlets, m.Cities, m.AvgRating, m.RatingStdDev, m.TotalVotes)
	}
	if r.Widespread != nil {
		fmt.Fprintf(&b, "Most widespread: %s (%d cities)\n", r.Widespread.Name, r.Widespread.Cities)
	}
	if r.TopRated != nil {
		fmt.Fprintf(&b, "Best rated: %s (%.2f)\n", r.TopRated.Name, r.TopRated.AvgRating)
	}
	if r.Popular != nil {
		fmt.Fprintf(&b, "Most popular: %s (%d votes)\n", r.Popular.Name, r.Popular.TotalVotes)
	}

	if len(r.Cuisines) > 0 {
		b.WriteString("\n[TOP CUISINES]\n")
		for _, c := range r.Cuisines {
			fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", c.Cuisine, c.Count, c.Percent)
		}
	}
	if len(r.Cities) > 0 {
		b.WriteString("\n[CITIES]\n")
		for _, c := range r.Cities {
			fmt.Fprintf(&b, "- %s: %d restaurants, avg rating %.2f\n", c.City, c.Count, c.AvgRating)
		}
	}
	if len(r.Prices) > 0 {
		b.WriteString("\n[PRICE RANGES]\n")
		for _, p := range r.Prices {
			fmt.Fprintf(&b, "- %-4s %5d (%.1f%%) %s\n", p.Label, p.Count, p.Percent, bar(p.Percent))
		}
	}
	if r.Delivery != nil {
		b.WriteString("\n[ONLINE DELIVERY]\n")
		fmt.Fprintf(&b, "- with delivery: %d (%.1f%%), avg rating %.2f\n",
			r.Delivery.With.Count, r.Delivery.With.Percent, r.Delivery.With.AvgRating)
		fmt.Fprintf(&b, "- without delivery: %d (%.1f%%), avg rating %.2f\n",
			r.Delivery.Without.Count, r.Delivery.Without.Percent, r.Delivery.Without.AvgRating)
	}
	if r.Geo != nil {
		b.WriteString("\n[MAP EXTENT]\n")
		fmt.Fprintf(&b, "Points: %d\n", r.Geo.Points)
		fmt.Fprintf(&b, "Bounds: lat [%.4f, %.4f], lng [%.4f, %.4f]\n",
			r.Geo.MinLat, r.Geo.MaxLat, r.Geo.MinLng, r.Geo.MaxLng)
		fmt.Fprintf(&b, "Center: %.4f, %.4f\n", r.Geo.CenterLat, r.Geo.CenterLng)
	}
	return b.String()
}

// bar draws a proportional ASCII bar for a percentage, 50 chars at 100%.
func bar(pct float64) string {
	n := int(pct / 2)
	if n < 0 {
		n = 0
	}
	if n > 50 {
		n = 50
	}
	return strings.Repeat("#", n)
}
