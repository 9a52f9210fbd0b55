package chains

import (
	"testing"

	"github.com/KaramelBytes/platewise/internal/dataset"
)

func rec(name, city string, rating float64, votes int) dataset.Record {
	return dataset.Record{Name: name, City: city, Rating: rating, Votes: votes}
}

func TestIdentifyGroupsByNormalizedName(t *testing.T) {
	records := []dataset.Record{
		rec("Pizza Hut", "A", 4.0, 10),
		rec("pizza hut", "A", 4.0, 20),
		rec("PIZZA HUT", "B", 3.0, 30),
		rec("UniqueDiner", "A", 4.5, 5),
	}
	groups := Identify(records, 2)
	if len(groups) != 1 {
		t.Fatalf("expected 1 chain, got %d: %v", len(groups), groups)
	}
	members, ok := groups["pizza hut"]
	if !ok {
		t.Fatalf("expected key 'pizza hut', got %v", groups)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 outlets, got %d", len(members))
	}
	// input order preserved within the bucket
	if members[0].Votes != 10 || members[1].Votes != 20 || members[2].Votes != 30 {
		t.Fatalf("bucket order not stable: %v", members)
	}
}

func TestIdentifySingletonNeverAChain(t *testing.T) {
	groups := Identify([]dataset.Record{rec("SoloCafe", "A", 4.0, 1)}, 2)
	if len(groups) != 0 {
		t.Fatalf("expected no chains, got %v", groups)
	}
}

func TestIdentifySkipsUnnamedRecords(t *testing.T) {
	records := []dataset.Record{
		rec("", "A", 4.0, 1),
		rec("  ", "A", 4.0, 1),
		rec("!!!", "A", 4.0, 1),
	}
	if groups := Identify(records, 2); len(groups) != 0 {
		t.Fatalf("unnamed records must never form chains, got %v", groups)
	}
}

func TestIdentifyPartition(t *testing.T) {
	records := []dataset.Record{
		rec("A Cafe", "X", 4, 1),
		rec("a cafe", "Y", 4, 1),
		rec("B Cafe", "X", 4, 1),
		rec("b cafe", "Y", 4, 1),
		rec("C Cafe", "X", 4, 1),
		rec("C-Cafe", "Y", 4, 1),
	}
	groups := Identify(records, 2)
	total := 0
	for _, members := range groups {
		total += len(members)
	}
	// every named record lands in exactly one bucket; singletons are
	// filtered so chain membership is at most the record count
	if total > len(records) {
		t.Fatalf("chain membership %d exceeds record count %d", total, len(records))
	}
	if len(groups["a cafe"]) != 2 || len(groups["b cafe"]) != 2 {
		t.Fatalf("unexpected grouping: %v", groups)
	}
	// the dash is dropped without splitting the word, so "C-Cafe" keys
	// as "ccafe", distinct from "c cafe": two singletons, both filtered
	if _, ok := groups["c cafe"]; ok {
		t.Fatal("singleton 'c cafe' must be filtered")
	}
	if _, ok := groups["ccafe"]; ok {
		t.Fatal("singleton 'ccafe' must be filtered")
	}
}

func TestIdentifyMinOutletsThreshold(t *testing.T) {
	records := []dataset.Record{
		rec("Duo", "A", 4, 1), rec("Duo", "B", 4, 1),
		rec("Trio", "A", 4, 1), rec("Trio", "B", 4, 1), rec("Trio", "C", 4, 1),
	}
	groups := Identify(records, 3)
	if _, ok := groups["duo"]; ok {
		t.Fatal("two outlets must not qualify with min-outlets 3")
	}
	if len(groups["trio"]) != 3 {
		t.Fatalf("expected trio with 3 outlets, got %v", groups)
	}
	// thresholds below 2 are raised to 2
	groups = Identify(records, 0)
	if len(groups) != 2 {
		t.Fatalf("expected both chains at threshold 0 (raised to 2), got %v", groups)
	}
}

func TestIdentifyEmptyInput(t *testing.T) {
	if groups := Identify(nil, 2); len(groups) != 0 {
		t.Fatalf("expected empty mapping, got %v", groups)
	}
}
