package ledger

// Status is the stock state of a ledger entry.
type Status string

const (
	StatusInStock Status = "in-stock"
	StatusLow     Status = "low"
	StatusOut     Status = "out"
)

var AllStatuses = []Status{StatusInStock, StatusLow, StatusOut}

func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusLow, StatusOut:
		return true
	}
	return false
}

func (s Status) Label() string {
	switch s {
	case StatusInStock:
		return "In Stock"
	case StatusLow:
		return "Low"
	case StatusOut:
		return "Out"
	}
	return string(s)
}

// Storage locations offered by the add/edit form.
const (
	LocationWarehouseA    = "Warehouse A"
	LocationWarehouseB    = "Warehouse B"
	LocationGarrison      = "The Garrison"
	LocationSafeHouse     = "Safe House"
	LocationCamdenSpirits = "Camden Spirits"
)

var Locations = []string{LocationWarehouseA, LocationWarehouseB, LocationGarrison, LocationSafeHouse, LocationCamdenSpirits}

// Record is one barrel lot in the ledger. JSON names match the persisted array.
type Record struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Origin       string `json:"origin"`
	Distillery   string `json:"distillery"`
	BarrelNumber string `json:"barrelNumber"`
	Age          int    `json:"age"`
	Quantity     int    `json:"quantity"`
	Location     string `json:"location"`
	Status       Status `json:"status"`
	DateAdded    string `json:"dateAdded"`
	Notes        string `json:"notes,omitempty"`
}

// Fields is everything the caller supplies when adding a record.
type Fields struct {
	Name         string `json:"name"`
	Origin       string `json:"origin"`
	Distillery   string `json:"distillery"`
	BarrelNumber string `json:"barrelNumber"`
	Age          int    `json:"age"`
	Quantity     int    `json:"quantity"`
	Location     string `json:"location"`
	Status       Status `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

// Patch is a partial update; nil fields are left alone.
type Patch struct {
	Name         *string `json:"name,omitempty"`
	Origin       *string `json:"origin,omitempty"`
	Distillery   *string `json:"distillery,omitempty"`
	BarrelNumber *string `json:"barrelNumber,omitempty"`
	Age          *int    `json:"age,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	Location     *string `json:"location,omitempty"`
	Status       *Status `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (p Patch) apply(r Record) Record {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Origin != nil {
		r.Origin = *p.Origin
	}
	if p.Distillery != nil {
		r.Distillery = *p.Distillery
	}
	if p.BarrelNumber != nil {
		r.BarrelNumber = *p.BarrelNumber
	}
	if p.Age != nil {
		r.Age = *p.Age
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	return r
}

// PatchFrom turns full form values into a patch that overwrites every editable field.
func PatchFrom(f Fields) Patch {
	return Patch{
		Name:         &f.Name,
		Origin:       &f.Origin,
		Distillery:   &f.Distillery,
		BarrelNumber: &f.BarrelNumber,
		Age:          &f.Age,
		Quantity:     &f.Quantity,
		Location:     &f.Location,
		Status:       &f.Status,
		Notes:        &f.Notes,
	}
}
