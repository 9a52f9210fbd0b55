package dataset

// Record is one restaurant row from the input dataset. Records are
// immutable after load; analyses take snapshots and never write back.
type Record struct {
	ID             string
	Name           string
	City           string
	Cuisines       []string
	PriceRange     int // ordinal 1..4, 0 when absent
	Rating         float64
	Votes          int
	Latitude       *float64
	Longitude      *float64
	OnlineDelivery bool
}

// HasCoordinates reports whether both geo fields were present in the row.
func (r Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Columns records which optional columns the input actually carried, so
// downstream analyses can skip sections instead of reporting zeros.
type Columns struct {
	City           bool
	Cuisines       bool
	PriceRange     bool
	Rating         bool
	Votes          bool
	Geo            bool
	OnlineDelivery bool
}

// Dataset is the in-memory snapshot of one loaded CSV file.
type Dataset struct {
	Source  string
	Records []Record
	Columns Columns
	// Skipped counts rows dropped by validation (negative votes, rating
	// outside [0,5], unparsable numerics). Loading never aborts on them.
	Skipped int
}

// Len returns the number of valid records.
func (d *Dataset) Len() int { return len(d.Records) }
