package model

// PantryItem is a tracked pantry row. Expiry is a YYYY-MM-DD date; empty
// means non-perishable. UpdatedAt is stamped on every insert and update.
type PantryItem struct {
	ID        int64
	Name      string
	Category  string
	OnHandQty int
	Unit      string
	Expiry    string
	MinQty    int
	UpdatedAt string
}

type Store struct {
	ID   int64
	Name string
}

// PriceEntry is one observation in the append-only price book. ItemName is
// free text matched by exact string equality, not a pantry reference.
type PriceEntry struct {
	ID         int64
	StoreID    int64
	ItemName   string
	PriceCents int64
	UpdatedAt  string
}

// Trip is a planned shopping trip. StoreID is nil while the store is
// undecided.
type Trip struct {
	ID          int64
	TripDate    string
	StoreID     *int64
	BudgetCents int64
	Note        string
}

// TripItem is one line of a trip's shopping list. ExpectedPriceCents is nil
// when the price is unknown; LineTotalCents is derived from it and
// PlannedQty and is never set directly by callers.
type TripItem struct {
	ID                 int64
	TripID             int64
	ItemName           string
	Unit               string
	PlannedQty         int
	ExpectedPriceCents *int64
	LineTotalCents     int64
}
