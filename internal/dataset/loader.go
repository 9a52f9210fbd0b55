package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Options controls CSV loading behavior.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
	// MaxRows limits rows processed; 0 means unlimited.
	MaxRows int
}

// DefaultOptions returns reasonable defaults for dataset loading.
func DefaultOptions() Options {
	return Options{MaxRows: 100000}
}

// Column header aliases, matched case-insensitively after trimming.
// Price is special-cased below: any header containing "price" qualifies,
// mirroring how real-world exports name it ("Price range", "Price_Range").
var headerAliases = map[string][]string{
	"name":     {"restaurant name", "name"},
	"city":     {"city", "town"},
	"cuisines": {"cuisines", "cuisine"},
	"rating":   {"aggregate rating", "rating"},
	"votes":    {"votes", "vote count"},
	"lat":      {"latitude", "lat"},
	"lng":      {"longitude", "lng", "lon"},
	"delivery": {"has online delivery", "online delivery"},
}

// Load reads a restaurant CSV into an immutable Dataset. Rows that fail
// validation are skipped and counted rather than failing the load; only
// I/O and malformed-CSV errors abort.
func Load(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path), opt)
}

// Read parses CSV content from r. The name is used only for reporting.
func Read(r io.Reader, name string, opt Options) (*Dataset, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(name)
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Dataset{Source: name}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := mapHeader(header)
	if idx["name"] < 0 {
		return nil, fmt.Errorf("no restaurant name column found in %s", name)
	}

	ds := &Dataset{
		Source: name,
		Columns: Columns{
			City:           idx["city"] >= 0,
			Cuisines:       idx["cuisines"] >= 0,
			PriceRange:     idx["price"] >= 0,
			Rating:         idx["rating"] >= 0,
			Votes:          idx["votes"] >= 0,
			Geo:            idx["lat"] >= 0 && idx["lng"] >= 0,
			OnlineDelivery: idx["delivery"] >= 0,
		},
	}

	maxRows := opt.MaxRows
	if maxRows <= 0 {
		maxRows = math.MaxInt
	}
	row := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+2, err)
		}
		row++
		if row > maxRows {
			break
		}
		r, ok := parseRow(rec, idx, ds.Columns)
		if !ok {
			ds.Skipped++
			continue
		}
		ds.Records = append(ds.Records, r)
	}
	return ds, nil
}

func sniffDelimiter(name string) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	return ','
}

// mapHeader resolves column positions by alias; -1 means absent.
func mapHeader(header []string) map[string]int {
	idx := map[string]int{
		"name": -1, "city": -1, "cuisines": -1, "price": -1,
		"rating": -1, "votes": -1, "lat": -1, "lng": -1, "delivery": -1,
	}
	for i, h := range header {
		hn := strings.ToLower(strings.TrimSpace(h))
		for key, aliases := range headerAliases {
			if idx[key] >= 0 {
				continue
			}
			for _, a := range aliases {
				if hn == a {
					idx[key] = i
					break
				}
			}
		}
		if idx["price"] < 0 && strings.Contains(hn, "price") {
			idx["price"] = i
		}
	}
	return idx
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseRow converts one CSV row to a Record. ok=false means the row
// failed validation and must be counted as skipped.
func parseRow(rec []string, idx map[string]int, cols Columns) (Record, bool) {
	out := Record{
		ID:   uuid.NewString(),
		Name: field(rec, idx["name"]),
		City: field(rec, idx["city"]),
	}
	if v := field(rec, idx["cuisines"]); v != "" {
		for _, c := range strings.Split(v, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				out.Cuisines = append(out.Cuisines, c)
			}
		}
	}
	if v := field(rec, idx["price"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 4 {
			return Record{}, false
		}
		out.PriceRange = n
	}
	if v := field(rec, idx["rating"]); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil || x < 0 || x > 5 {
			return Record{}, false
		}
		out.Rating = x
	}
	if v := field(rec, idx["votes"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Record{}, false
		}
		out.Votes = n
	}
	if cols.Geo {
		latS, lngS := field(rec, idx["lat"]), field(rec, idx["lng"])
		if latS != "" && lngS != "" {
			lat, errLat := strconv.ParseFloat(latS, 64)
			lng, errLng := strconv.ParseFloat(lngS, 64)
			// Bad coordinates drop the point, not the record; geo is
			// optional and unused by the core analyses.
			if errLat == nil && errLng == nil && lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180 {
				out.Latitude = &lat
				out.Longitude = &lng
			}
		}
	}
	if v := field(rec, idx["delivery"]); v != "" {
		out.OnlineDelivery = strings.EqualFold(v, "yes") || strings.EqualFold(v, "true") || v == "1"
	}
	return out, true
}
