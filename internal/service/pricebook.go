package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vincent-oy/GrocerEase/internal/model"
)

func ListStores(db *sql.DB) ([]model.Store, error) {
	rows, err := db.Query(`SELECT id, name FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	stores := make([]model.Store, 0)
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}
	return stores, nil
}

func AddStore(db *sql.DB, name string) (*model.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("store name is required")
	}
	res, err := db.Exec(`INSERT INTO stores(name) VALUES(?)`, name)
	if err != nil {
		return nil, fmt.Errorf("add store %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read store id: %w", err)
	}
	return &model.Store{ID: id, Name: name}, nil
}

// LatestPriceCents returns the most recently recorded price for the exact
// (store, item) pair, or nil when none exists. Item names match
// case-sensitively.
func LatestPriceCents(db *sql.DB, storeID int64, itemName string) (*int64, error) {
	var cents int64
	err := db.QueryRow(`
SELECT price_cents FROM price_entries
WHERE store_id = ? AND item_name = ?
ORDER BY updated_at DESC, id DESC
LIMIT 1
`, storeID, itemName).Scan(&cents)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("latest price for %q at store %d: %w", itemName, storeID, err)
	}
	return &cents, nil
}

// UpsertPrice records a new observation; earlier entries are kept so the
// price history stays intact and "latest" is resolved at read time.
func UpsertPrice(db *sql.DB, storeID int64, itemName string, priceCents int64) error {
	if err := validateNonNegativeCents("price", priceCents); err != nil {
		return err
	}
	if _, err := db.Exec(`
INSERT INTO price_entries(store_id, item_name, price_cents, updated_at)
VALUES(?, ?, ?, ?)
`, storeID, itemName, priceCents, nowStamp()); err != nil {
		return fmt.Errorf("record price for %q at store %d: %w", itemName, storeID, err)
	}
	return nil
}

// PriceHistory lists every recorded price for the pair, newest first.
func PriceHistory(db *sql.DB, storeID int64, itemName string) ([]model.PriceEntry, error) {
	rows, err := db.Query(`
SELECT id, store_id, item_name, price_cents, updated_at FROM price_entries
WHERE store_id = ? AND item_name = ?
ORDER BY updated_at DESC, id DESC
`, storeID, itemName)
	if err != nil {
		return nil, fmt.Errorf("price history for %q at store %d: %w", itemName, storeID, err)
	}
	defer rows.Close()

	entries := make([]model.PriceEntry, 0)
	for rows.Next() {
		var e model.PriceEntry
		if err := rows.Scan(&e.ID, &e.StoreID, &e.ItemName, &e.PriceCents, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price entries: %w", err)
	}
	return entries, nil
}
