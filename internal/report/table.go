package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes the report as ASCII tables, one per section.
func (r *Report) RenderTable(w io.Writer) {
	fmt.Fprintf(w, "%s — %d rows", r.Source, r.Rows)
	if r.Skipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", r.Skipped)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nChains")
	if len(r.Chains) == 0 {
		fmt.Fprintln(w, "No restaurant chains detected in this dataset.")
	} else {
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"Chain", "Outlets", "Cities", "Avg Rating", "Std Dev", "Total Votes", "Avg Votes"})
		t.SetAutoFormatHeaders(false)
		for _, m := range r.Chains {
			t.Append([]string{
				m.Name,
				strconv.Itoa(m.Outlets),
				strconv.Itoa(m.Cities),
				fmt.Sprintf("%.2f", m.AvgRating),
				fmt.Sprintf("%.2f", m.RatingStdDev),
				strconv.Itoa(m.TotalVotes),
				fmt.Sprintf("%.1f", m.AvgVotes),
			})
		}
		t.Render()
	}
	if r.Widespread != nil {
		fmt.Fprintf(w, "Most widespread: %s (%d cities)\n", r.Widespread.Name, r.Widespread.Cities)
	}
	if r.TopRated != nil {
		fmt.Fprintf(w, "Best rated: %s (%.2f)\n", r.TopRated.Name, r.TopRated.AvgRating)
	}
	if r.Popular != nil {
		fmt.Fprintf(w, "Most popular: %s (%d votes)\n", r.Popular.Name, r.Popular.TotalVotes)
	}

	if len(r.Cuisines) > 0 {
		fmt.Fprintln(w, "\nTop cuisines")
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"Cuisine", "Count", "Percent"})
		t.SetAutoFormatHeaders(false)
		for _, c := range r.Cuisines {
			t.Append([]string{c.Cuisine, strconv.Itoa(c.Count), fmt.Sprintf("%.1f%%", c.Percent)})
		}
		t.Render()
	}
	if len(r.Cities) > 0 {
		fmt.Fprintln(w, "\nCities")
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"City", "Restaurants", "Avg Rating"})
		t.SetAutoFormatHeaders(false)
		for _, c := range r.Cities {
			t.Append([]string{c.City, strconv.Itoa(c.Count), fmt.Sprintf("%.2f", c.AvgRating)})
		}
		t.Render()
	}
	if len(r.Prices) > 0 {
		fmt.Fprintln(w, "\nPrice ranges")
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"Range", "Count", "Percent"})
		t.SetAutoFormatHeaders(false)
		for _, p := range r.Prices {
			t.Append([]string{p.Label, strconv.Itoa(p.Count), fmt.Sprintf("%.1f%%", p.Percent)})
		}
		t.Render()
	}
	if r.Delivery != nil {
		fmt.Fprintln(w, "\nOnline delivery")
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"", "Count", "Percent", "Avg Rating"})
		t.SetAutoFormatHeaders(false)
		t.Append([]string{"with", strconv.Itoa(r.Delivery.With.Count),
			fmt.Sprintf("%.1f%%", r.Delivery.With.Percent), fmt.Sprintf("%.2f", r.Delivery.With.AvgRating)})
		t.Append([]string{"without", strconv.Itoa(r.Delivery.Without.Count),
			fmt.Sprintf("%.1f%%", r.Delivery.Without.Percent), fmt.Sprintf("%.2f", r.Delivery.Without.AvgRating)})
		t.Render()
	}
	if r.Geo != nil {
		fmt.Fprintf(w, "\nMap extent: %d points, lat [%.4f, %.4f], lng [%.4f, %.4f], center %.4f, %.4f\n",
			r.Geo.Points, r.Geo.MinLat, r.Geo.MaxLat, r.Geo.MinLng, r.Geo.MaxLng,
			r.Geo.CenterLat, r.Geo.CenterLng)
	}
}
