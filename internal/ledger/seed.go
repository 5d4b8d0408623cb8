package ledger

// Seed is the collection a fresh ledger starts with.
func Seed() []Record {
	return []Record{
		{ID: "1", Name: "Shelby Reserve", Origin: "Birmingham", Distillery: "Small Heath Distillery", BarrelNumber: "SH-1921-042", Age: 12, Quantity: 45, Location: LocationWarehouseA, Status: StatusInStock, DateAdded: "12th March, 1921", Notes: "Premium batch for export"},
		{ID: "2", Name: "Garrison Gold", Origin: "London", Distillery: "Camden Spirits", BarrelNumber: "CG-1920-118", Age: 8, Quantity: 12, Location: LocationGarrison, Status: StatusLow, DateAdded: "8th January, 1921", Notes: "House blend"},
		{ID: "3", Name: "Small Heath Rye", Origin: "Sheffield", Distillery: "Northern Grain Co.", BarrelNumber: "NG-1919-067", Age: 5, Quantity: 0, Location: LocationWarehouseB, Status: StatusOut, DateAdded: "3rd December, 1920", Notes: "Awaiting new shipment"},
		{ID: "4", Name: "Peaky Single Malt", Origin: "Glasgow", Distillery: "Highland Reserve", BarrelNumber: "HR-1921-089", Age: 15, Quantity: 28, Location: LocationWarehouseA, Status: StatusInStock, DateAdded: "15th February, 1921", Notes: "Scottish import"},
		{ID: "5", Name: "Birmingham Blend", Origin: "Birmingham", Distillery: "Small Heath Distillery", BarrelNumber: "SH-1920-156", Age: 7, Quantity: 8, Location: LocationGarrison, Status: StatusLow, DateAdded: "22nd November, 1920", Notes: "Popular with locals"},
		{ID: "6", Name: "Solomon's Select", Origin: "London", Distillery: "Solomon Imports", BarrelNumber: "SI-1921-023", Age: 10, Quantity: 34, Location: LocationSafeHouse, Status: StatusInStock, DateAdded: "1st April, 1921", Notes: "Special arrangement"},
	}
}
