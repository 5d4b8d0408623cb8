package ledger

import "sort"

// activeThreshold is the quantity an in-stock lot must exceed to count as an active shipment.
const activeThreshold = 20

// Stats are the headline numbers shown on the home page.
type Stats struct {
	TotalValue      int `json:"totalValue"`
	TotalBottles    int `json:"totalBottles"`
	Territories     int `json:"territories"`
	ActiveShipments int `json:"activeShipments"`
}

// BottlePrice is the per-bottle price used for the ledger's valuation.
func BottlePrice(age int) int { return age*15 + 50 }

// ComputeStats derives Stats from records. Negative ages and quantities pass straight through.
func ComputeStats(records []Record) Stats {
	var st Stats
	locations := make(map[string]struct{}, len(records))
	for _, r := range records {
		st.TotalBottles += r.Quantity
		st.TotalValue += r.Quantity * BottlePrice(r.Age)
		locations[r.Location] = struct{}{}
		if r.Status == StatusInStock && r.Quantity > activeThreshold {
			st.ActiveShipments++
		}
	}
	st.Territories = len(locations)
	return st
}

// LocationTotal is the bottle count held at one location.
type LocationTotal struct {
	Location string `json:"location"`
	Bottles  int    `json:"bottles"`
	Items    int    `json:"items"`
}

// Report is the stock report breakdown.
type Report struct {
	TotalItems int             `json:"totalItems"`
	InStock    int             `json:"inStock"`
	LowOrOut   []Record        `json:"lowOrOut"`
	OutOfStock int             `json:"outOfStock"`
	ByLocation []LocationTotal `json:"byLocation"`
	Stats      Stats           `json:"stats"`
}

// BuildReport groups records for the reports view. ByLocation is ordered by
// bottle count, largest first, ties broken by name.
func BuildReport(records []Record) Report {
	rep := Report{TotalItems: len(records), Stats: ComputeStats(records), LowOrOut: []Record{}}
	byLoc := map[string]*LocationTotal{}
	for _, r := range records {
		switch r.Status {
		case StatusInStock:
			rep.InStock++
		case StatusLow:
			rep.LowOrOut = append(rep.LowOrOut, r)
		case StatusOut:
			rep.LowOrOut = append(rep.LowOrOut, r)
			rep.OutOfStock++
		}
		lt, ok := byLoc[r.Location]
		if !ok {
			lt = &LocationTotal{Location: r.Location}
			byLoc[r.Location] = lt
		}
		lt.Bottles += r.Quantity
		lt.Items++
	}
	rep.ByLocation = make([]LocationTotal, 0, len(byLoc))
	for _, lt := range byLoc {
		rep.ByLocation = append(rep.ByLocation, *lt)
	}
	sort.Slice(rep.ByLocation, func(i, j int) bool {
		a, b := rep.ByLocation[i], rep.ByLocation[j]
		if a.Bottles != b.Bottles {
			return a.Bottles > b.Bottles
		}
		return a.Location < b.Location
	})
	return rep
}
