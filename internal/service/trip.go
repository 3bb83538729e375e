package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vincent-oy/GrocerEase/internal/model"
)

// TripInput describes a trip to create. StoreID is stored verbatim and may
// be nil while the store is undecided.
type TripInput struct {
	TripDate    string
	StoreID     *int64
	BudgetCents int64
	Note        string
}

func CreateTrip(db *sql.DB, in TripInput) (*model.Trip, error) {
	in.TripDate = strings.TrimSpace(in.TripDate)
	if in.TripDate == "" {
		return nil, validationf("trip date is required")
	}
	if _, err := time.Parse(dateLayout, in.TripDate); err != nil {
		return nil, validationf("invalid trip date %q (expected YYYY-MM-DD)", in.TripDate)
	}
	if err := validateNonNegativeCents("budget", in.BudgetCents); err != nil {
		return nil, err
	}
	in.Note = strings.TrimSpace(in.Note)

	var storeID sql.NullInt64
	if in.StoreID != nil {
		storeID = sql.NullInt64{Int64: *in.StoreID, Valid: true}
	}
	res, err := db.Exec(`
INSERT INTO trips(trip_date, store_id, budget_cents, note)
VALUES(?, ?, ?, ?)
`, in.TripDate, storeID, in.BudgetCents, nullIfBlank(in.Note))
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read trip id: %w", err)
	}

	return &model.Trip{
		ID:          id,
		TripDate:    in.TripDate,
		StoreID:     in.StoreID,
		BudgetCents: in.BudgetCents,
		Note:        in.Note,
	}, nil
}

const tripColumns = `id, trip_date, store_id, budget_cents, note`

func scanTrip(row interface{ Scan(...any) error }) (model.Trip, error) {
	var t model.Trip
	var storeID sql.NullInt64
	var note sql.NullString
	if err := row.Scan(&t.ID, &t.TripDate, &storeID, &t.BudgetCents, &note); err != nil {
		return model.Trip{}, err
	}
	if storeID.Valid {
		t.StoreID = &storeID.Int64
	}
	t.Note = note.String
	return t, nil
}

// ListTrips returns trips most recent first; same-day trips keep insertion
// order, newest on top.
func ListTrips(db *sql.DB) ([]model.Trip, error) {
	rows, err := db.Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY trip_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]model.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}
	return trips, nil
}

func TripByID(db *sql.DB, id int64) (*model.Trip, error) {
	t, err := scanTrip(db.QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &NotFoundError{Entity: "trip", ID: id}
		}
		return nil, fmt.Errorf("load trip %d: %w", id, err)
	}
	return &t, nil
}

// ListTripItems returns the trip's shopping list in the order items were
// added.
func ListTripItems(db *sql.DB, tripID int64) ([]model.TripItem, error) {
	rows, err := db.Query(`
SELECT id, trip_id, item_name, unit, planned_qty, expected_price_cents, line_total_cents
FROM trip_items
WHERE trip_id = ?
ORDER BY id
`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list items for trip %d: %w", tripID, err)
	}
	defer rows.Close()

	items := make([]model.TripItem, 0)
	for rows.Next() {
		var ti model.TripItem
		var unit sql.NullString
		var price sql.NullInt64
		if err := rows.Scan(&ti.ID, &ti.TripID, &ti.ItemName, &unit, &ti.PlannedQty, &price, &ti.LineTotalCents); err != nil {
			return nil, fmt.Errorf("scan trip item: %w", err)
		}
		ti.Unit = unit.String
		if price.Valid {
			ti.ExpectedPriceCents = &price.Int64
		}
		items = append(items, ti)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trip items: %w", err)
	}
	return items, nil
}

// lineTotalCents is the single recompute path for the derived line total.
// An unknown price always yields zero.
func lineTotalCents(expectedPriceCents *int64, qty int) int64 {
	if expectedPriceCents == nil {
		return 0
	}
	return *expectedPriceCents * int64(qty)
}

// TripItemInput describes a line to add to a trip. ExpectedPriceCents is
// nil when the price is unknown and cannot be changed after creation.
type TripItemInput struct {
	TripID             int64
	ItemName           string
	Unit               string
	PlannedQty         int
	ExpectedPriceCents *int64
}

func AddTripItem(db *sql.DB, in TripItemInput) (*model.TripItem, error) {
	if in.TripID <= 0 {
		return nil, validationf("trip id must be > 0")
	}
	in.ItemName = strings.TrimSpace(in.ItemName)
	if in.ItemName == "" {
		return nil, validationf("item name is required")
	}
	if in.PlannedQty <= 0 {
		return nil, validationf("quantity must be > 0")
	}
	if in.ExpectedPriceCents != nil {
		if err := validateNonNegativeCents("expected price", *in.ExpectedPriceCents); err != nil {
			return nil, err
		}
	}
	in.Unit = strings.TrimSpace(in.Unit)
	total := lineTotalCents(in.ExpectedPriceCents, in.PlannedQty)

	var price sql.NullInt64
	if in.ExpectedPriceCents != nil {
		price = sql.NullInt64{Int64: *in.ExpectedPriceCents, Valid: true}
	}
	res, err := db.Exec(`
INSERT INTO trip_items(trip_id, item_name, unit, planned_qty, expected_price_cents, line_total_cents)
VALUES(?, ?, ?, ?, ?, ?)
`, in.TripID, in.ItemName, nullIfBlank(in.Unit), in.PlannedQty, price, total)
	if err != nil {
		return nil, fmt.Errorf("add item %q to trip %d: %w", in.ItemName, in.TripID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read trip item id: %w", err)
	}

	return &model.TripItem{
		ID:                 id,
		TripID:             in.TripID,
		ItemName:           in.ItemName,
		Unit:               in.Unit,
		PlannedQty:         in.PlannedQty,
		ExpectedPriceCents: in.ExpectedPriceCents,
		LineTotalCents:     total,
	}, nil
}

// UpdateTripItemQty changes a line's planned quantity and recomputes the
// line total from the stored expected price. A line created with an unknown
// price keeps a zero total. Reports whether a row was updated.
func UpdateTripItemQty(db *sql.DB, tripItemID int64, newQty int) (bool, error) {
	if newQty <= 0 {
		return false, validationf("quantity must be > 0")
	}

	var price sql.NullInt64
	err := db.QueryRow(`SELECT expected_price_cents FROM trip_items WHERE id = ?`, tripItemID).Scan(&price)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("load trip item %d: %w", tripItemID, err)
	}
	var expected *int64
	if price.Valid {
		expected = &price.Int64
	}
	total := lineTotalCents(expected, newQty)

	if _, err := db.Exec(`
UPDATE trip_items SET planned_qty = ?, line_total_cents = ? WHERE id = ?
`, newQty, total, tripItemID); err != nil {
		return false, fmt.Errorf("update trip item %d quantity: %w", tripItemID, err)
	}
	return true, nil
}

// RemoveTripItem reports whether the line existed.
func RemoveTripItem(db *sql.DB, tripItemID int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM trip_items WHERE id = ?`, tripItemID)
	if err != nil {
		return false, fmt.Errorf("remove trip item %d: %w", tripItemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for trip item %d: %w", tripItemID, err)
	}
	return affected > 0, nil
}

// TripSubtotalCents sums the line totals of a trip; an empty trip is zero.
func TripSubtotalCents(db *sql.DB, tripID int64) (int64, error) {
	var subtotal int64
	err := db.QueryRow(`SELECT COALESCE(SUM(line_total_cents), 0) FROM trip_items WHERE trip_id = ?`, tripID).Scan(&subtotal)
	if err != nil {
		return 0, fmt.Errorf("subtotal for trip %d: %w", tripID, err)
	}
	return subtotal, nil
}

// RemainingBudgetCents is derived on every read and never persisted.
func RemainingBudgetCents(t *model.Trip, subtotalCents int64) int64 {
	return t.BudgetCents - subtotalCents
}
