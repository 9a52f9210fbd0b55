package chains

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/KaramelBytes/platewise/internal/dataset"
)

func approx(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (±%v)", label, got, want, tol)
	}
}

func TestAggregatePizzaHutScenario(t *testing.T) {
	records := []dataset.Record{
		rec("Pizza Hut", "A", 4.0, 10),
		rec("Pizza Hut", "A", 4.0, 20),
		rec("Pizza Hut", "B", 3.0, 30),
	}
	metrics := Aggregate(Identify(records, 2))
	if len(metrics) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(metrics))
	}
	m := metrics[0]
	if m.Name != "pizza hut" {
		t.Fatalf("name = %q", m.Name)
	}
	if m.Outlets != 3 || m.Cities != 2 || m.TotalVotes != 60 {
		t.Fatalf("outlets/cities/votes = %d/%d/%d, want 3/2/60", m.Outlets, m.Cities, m.TotalVotes)
	}
	approx(t, m.AvgRating, 11.0/3.0, 1e-9, "AvgRating")
	approx(t, m.AvgVotes, 20, 1e-9, "AvgVotes")
	approx(t, m.MinRating, 3.0, 1e-9, "MinRating")
	approx(t, m.MaxRating, 4.0, 1e-9, "MaxRating")
	// population stddev of {4, 4, 3}
	approx(t, m.RatingStdDev, math.Sqrt(2.0/9.0), 1e-9, "RatingStdDev")
}

func TestAggregateExcludesRatingSentinel(t *testing.T) {
	records := []dataset.Record{
		rec("Chai Point", "A", 0, 100), // not yet rated
		rec("Chai Point", "B", 4.0, 50),
	}
	metrics := Aggregate(Identify(records, 2))
	if len(metrics) != 1 {
		t.Fatalf("expected 1 chain, got %d", len(metrics))
	}
	m := metrics[0]
	approx(t, m.AvgRating, 4.0, 1e-9, "AvgRating")
	if m.RatingStdDev != 0 {
		t.Fatalf("stddev with one rated member must be 0, got %v", m.RatingStdDev)
	}
	// votes of the unrated outlet still count
	if m.TotalVotes != 150 {
		t.Fatalf("TotalVotes = %d, want 150", m.TotalVotes)
	}
}

func TestAggregateDeterministicOrder(t *testing.T) {
	records := []dataset.Record{
		rec("Beta", "A", 4, 1), rec("Beta", "B", 4, 1),
		rec("Alpha", "A", 4, 1), rec("Alpha", "B", 4, 1),
		rec("Gamma", "A", 4, 1), rec("Gamma", "B", 4, 1), rec("Gamma", "C", 4, 1),
	}
	first := Aggregate(Identify(records, 2))
	second := Aggregate(Identify(records, 2))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("aggregate output must be identical across runs")
	}
	// outlets desc, then name asc
	want := []string{"gamma", "alpha", "beta"}
	for i, m := range first {
		if m.Name != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestRankingQueriesEmptyInput(t *testing.T) {
	for _, q := range []struct {
		name string
		fn   func([]Metrics) (Metrics, error)
	}{
		{"MostWidespread", MostWidespread},
		{"BestRated", BestRated},
		{"MostPopular", MostPopular},
	} {
		if _, err := q.fn(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("%s(nil) err = %v, want ErrEmptyInput", q.name, err)
		}
	}
}

func TestMostWidespreadTieBreaks(t *testing.T) {
	metrics := []Metrics{
		{Name: "b", Cities: 3, Outlets: 5},
		{Name: "a", Cities: 3, Outlets: 5},
		{Name: "c", Cities: 3, Outlets: 7},
		{Name: "d", Cities: 2, Outlets: 20},
	}
	m, err := MostWidespread(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "c" {
		t.Fatalf("want c (more outlets at 3 cities), got %q", m.Name)
	}
	// equal outlets too: lexicographically first name wins
	m, err = MostWidespread(metrics[:2])
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "a" {
		t.Fatalf("want a, got %q", m.Name)
	}
}

func TestBestRatedTieBreaks(t *testing.T) {
	metrics := []Metrics{
		{Name: "zed", AvgRating: 4.5, TotalVotes: 100},
		{Name: "ace", AvgRating: 4.5, TotalVotes: 100},
		{Name: "mid", AvgRating: 4.5, TotalVotes: 250},
		{Name: "low", AvgRating: 4.4, TotalVotes: 999},
	}
	m, err := BestRated(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "mid" {
		t.Fatalf("want mid (higher votes at 4.5), got %q", m.Name)
	}
	m, err = BestRated(metrics[:2])
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "ace" {
		t.Fatalf("want ace (name tie-break), got %q", m.Name)
	}
}

func TestMostPopularTieBreaks(t *testing.T) {
	metrics := []Metrics{
		{Name: "b", TotalVotes: 500, AvgRating: 4.0},
		{Name: "a", TotalVotes: 500, AvgRating: 4.2},
		{Name: "c", TotalVotes: 400, AvgRating: 5.0},
	}
	m, err := MostPopular(metrics)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "a" {
		t.Fatalf("want a (higher rating at 500 votes), got %q", m.Name)
	}
}
