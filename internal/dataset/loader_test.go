package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sampleRows = []string{
	"Restaurant Name,City,Cuisines,Price range,Aggregate rating,Votes,Latitude,Longitude,Has Online delivery",
	"Pizza Hut,New Delhi,\"Pizza, Fast Food\",2,4.0,120,28.6139,77.2090,Yes",
	"Pizza Hut,Gurgaon,\"Pizza, Fast Food\",2,3.8,95,28.4595,77.0266,No",
	"SoloCafe,New Delhi,Cafe,1,0,0,,,No",
}

func writeCSV(t *testing.T, rows []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "restaurants.csv")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func TestLoadMapsColumns(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleRows), DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("records = %d, want 3", ds.Len())
	}
	if ds.Skipped != 0 {
		t.Fatalf("skipped = %d, want 0", ds.Skipped)
	}
	cols := ds.Columns
	if !cols.City || !cols.Cuisines || !cols.PriceRange || !cols.Rating || !cols.Votes || !cols.Geo || !cols.OnlineDelivery {
		t.Fatalf("column detection incomplete: %+v", cols)
	}
	r := ds.Records[0]
	if r.Name != "Pizza Hut" || r.City != "New Delhi" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if len(r.Cuisines) != 2 || r.Cuisines[0] != "Pizza" || r.Cuisines[1] != "Fast Food" {
		t.Fatalf("cuisines not exploded/trimmed: %v", r.Cuisines)
	}
	if r.PriceRange != 2 || r.Rating != 4.0 || r.Votes != 120 || !r.OnlineDelivery {
		t.Fatalf("numeric fields wrong: %+v", r)
	}
	if !r.HasCoordinates() {
		t.Fatal("expected coordinates on first record")
	}
	if r.ID == "" || ds.Records[1].ID == r.ID {
		t.Fatal("records must get unique IDs")
	}
	// missing geo fields keep the record but drop the point
	if ds.Records[2].HasCoordinates() {
		t.Fatal("SoloCafe has no coordinates")
	}
}

func TestLoadSkipsInvalidRows(t *testing.T) {
	rows := []string{
		"Restaurant Name,City,Aggregate rating,Votes",
		"Good Diner,A,4.2,10",
		"Bad Rating,A,7.5,10",
		"Bad Votes,A,4.0,-3",
		"Bad Number,A,notafloat,10",
		"Another Good,B,3.1,0",
	}
	ds, err := Load(writeCSV(t, rows), DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("records = %d, want 2", ds.Len())
	}
	if ds.Skipped != 3 {
		t.Fatalf("skipped = %d, want 3", ds.Skipped)
	}
}

func TestLoadHeaderAliases(t *testing.T) {
	rows := []string{
		"name,town,cuisine,Price_Range,rating,votes",
		"Cafe One,Lisbon,Portuguese,3,4.4,77",
	}
	ds, err := Load(writeCSV(t, rows), DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := ds.Records[0]
	if r.City != "Lisbon" || r.PriceRange != 3 || r.Rating != 4.4 || r.Votes != 77 {
		t.Fatalf("alias mapping failed: %+v", r)
	}
	if ds.Columns.Geo || ds.Columns.OnlineDelivery {
		t.Fatalf("absent optional columns must not be detected: %+v", ds.Columns)
	}
}

func TestLoadRequiresNameColumn(t *testing.T) {
	rows := []string{"City,Votes", "A,10"}
	if _, err := Load(writeCSV(t, rows), DefaultOptions()); err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestLoadMaxRows(t *testing.T) {
	rows := []string{"Restaurant Name", "One", "Two", "Three"}
	opt := DefaultOptions()
	opt.MaxRows = 2
	ds, err := Load(writeCSV(t, rows), opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("records = %d, want 2", ds.Len())
	}
}

func TestReadSemicolonDelimiter(t *testing.T) {
	content := "Restaurant Name;City\nTapas Bar;Madrid\n"
	ds, err := Read(strings.NewReader(content), "spain.csv", Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ds.Len() != 1 || ds.Records[0].City != "Madrid" {
		t.Fatalf("unexpected dataset: %+v", ds.Records)
	}
}

func TestReadEmptyFile(t *testing.T) {
	ds, err := Read(strings.NewReader(""), "empty.csv", DefaultOptions())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ds.Len() != 0 {
		t.Fatalf("expected empty dataset, got %d records", ds.Len())
	}
}
