package ledger

import (
	"testing"
	"time"
)

func TestComputeStatsEmpty(t *testing.T) {
	if got := ComputeStats(nil); got != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestComputeStatsSingles(t *testing.T) {
	cases := []struct {
		name   string
		rec    Record
		value  int
		active int
	}{
		{"at threshold not active", Record{Age: 10, Quantity: 5, Status: StatusInStock}, 1000, 0},
		{"young but plentiful", Record{Age: 0, Quantity: 25, Status: StatusInStock}, 1250, 1},
		{"exactly twenty", Record{Age: 1, Quantity: 20, Status: StatusInStock}, 1300, 0},
		{"plentiful but low", Record{Age: 1, Quantity: 30, Status: StatusLow}, 1950, 0},
	}
	for _, tc := range cases {
		got := ComputeStats([]Record{tc.rec})
		if got.TotalValue != tc.value || got.ActiveShipments != tc.active || got.TotalBottles != tc.rec.Quantity {
			t.Fatalf("%s: got %+v", tc.name, got)
		}
		if got.Territories != 1 {
			t.Fatalf("%s: territories %d", tc.name, got.Territories)
		}
	}
}

func TestComputeStatsSeed(t *testing.T) {
	got := ComputeStats(Seed())
	want := Stats{TotalValue: 28130, TotalBottles: 127, Territories: 4, ActiveShipments: 3}
	if got != want {
		t.Fatalf("seed stats: got %+v want %+v", got, want)
	}
}

func TestComputeStatsOrderInvariant(t *testing.T) {
	recs := Seed()
	rev := make([]Record, len(recs))
	for i, r := range recs {
		rev[len(recs)-1-i] = r
	}
	if ComputeStats(recs) != ComputeStats(rev) {
		t.Fatal("stats depend on record order")
	}
}

func TestBuildReport(t *testing.T) {
	rep := BuildReport(Seed())
	if rep.TotalItems != 6 || rep.InStock != 3 || rep.OutOfStock != 1 || len(rep.LowOrOut) != 3 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	if len(rep.ByLocation) != 4 {
		t.Fatalf("expected 4 locations, got %d", len(rep.ByLocation))
	}
	first := rep.ByLocation[0]
	if first.Location != LocationWarehouseA || first.Bottles != 73 || first.Items != 2 {
		t.Fatalf("unexpected leading location: %+v", first)
	}
	for i := 1; i < len(rep.ByLocation); i++ {
		if rep.ByLocation[i-1].Bottles < rep.ByLocation[i].Bottles {
			t.Fatal("locations not ordered by bottle count")
		}
	}
	empty := BuildReport(nil)
	if empty.LowOrOut == nil || len(empty.ByLocation) != 0 {
		t.Fatal("empty report should carry empty, non-nil slices")
	}
}

func TestFormatDateAdded(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th",
		13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
	}
	for day, prefix := range cases {
		got := FormatDateAdded(time.Date(1921, time.March, day, 0, 0, 0, 0, time.UTC))
		if want := prefix + " March, 1921"; got != want {
			t.Fatalf("day %d: got %q want %q", day, got, want)
		}
	}
}
