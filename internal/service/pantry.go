package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vincent-oy/GrocerEase/internal/model"
)

// PantryItemInput carries the mutable fields of a pantry item. Category,
// Unit and Expiry are optional; blank values are normalized to absent.
type PantryItemInput struct {
	Name      string
	Category  string
	OnHandQty int
	Unit      string
	Expiry    string
	MinQty    int
}

func (in *PantryItemInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return validationf("item name is required")
	}
	if err := validateNonNegative("on-hand quantity", in.OnHandQty); err != nil {
		return err
	}
	if err := validateNonNegative("minimum quantity", in.MinQty); err != nil {
		return err
	}
	in.Category = strings.TrimSpace(in.Category)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Expiry = strings.TrimSpace(in.Expiry)
	if in.Expiry != "" {
		if _, err := time.Parse(dateLayout, in.Expiry); err != nil {
			return validationf("invalid expiry %q (expected YYYY-MM-DD)", in.Expiry)
		}
	}
	return nil
}

const pantryColumns = `id, name, category, on_hand_qty, unit, expiry, min_qty, updated_at`

func scanPantryItem(rows *sql.Rows) (model.PantryItem, error) {
	var p model.PantryItem
	var category, unit, expiry sql.NullString
	if err := rows.Scan(&p.ID, &p.Name, &category, &p.OnHandQty, &unit, &expiry, &p.MinQty, &p.UpdatedAt); err != nil {
		return model.PantryItem{}, err
	}
	p.Category = category.String
	p.Unit = unit.String
	p.Expiry = expiry.String
	return p, nil
}

func queryPantryItems(db *sql.DB, query string, args ...any) ([]model.PantryItem, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PantryItem, 0)
	for rows.Next() {
		p, err := scanPantryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pantry items: %w", err)
	}
	return items, nil
}

func ListPantryItems(db *sql.DB) ([]model.PantryItem, error) {
	items, err := queryPantryItems(db, `SELECT `+pantryColumns+` FROM pantry_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	return items, nil
}

// LowStock returns items whose on-hand quantity is at or below the minimum
// threshold. A just-exhausted item (0 on hand, 0 minimum) counts.
func LowStock(db *sql.DB) ([]model.PantryItem, error) {
	items, err := queryPantryItems(db, `SELECT `+pantryColumns+` FROM pantry_items WHERE on_hand_qty <= min_qty ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list low-stock items: %w", err)
	}
	return items, nil
}

// ExpiringSoon returns perishable items expiring on or before today+days,
// soonest first. Zero means today or earlier; negative days look further
// into the past. Items without an expiry are never returned.
func ExpiringSoon(db *sql.DB, days int) ([]model.PantryItem, error) {
	limit := time.Now().AddDate(0, 0, days).Format(dateLayout)
	items, err := queryPantryItems(db, `SELECT `+pantryColumns+` FROM pantry_items WHERE expiry IS NOT NULL AND expiry <= ? ORDER BY expiry ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("list expiring items: %w", err)
	}
	return items, nil
}

func AddPantryItem(db *sql.DB, in PantryItemInput) (*model.PantryItem, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	stamp := nowStamp()

	res, err := db.Exec(`
INSERT INTO pantry_items(name, category, on_hand_qty, unit, expiry, min_qty, updated_at)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, in.Name, nullIfBlank(in.Category), in.OnHandQty, nullIfBlank(in.Unit), nullIfBlank(in.Expiry), in.MinQty, stamp)
	if err != nil {
		return nil, fmt.Errorf("add pantry item %q: %w", in.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read pantry item id: %w", err)
	}

	return &model.PantryItem{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		OnHandQty: in.OnHandQty,
		Unit:      in.Unit,
		Expiry:    in.Expiry,
		MinQty:    in.MinQty,
		UpdatedAt: stamp,
	}, nil
}

// UpdatePantryItem replaces all mutable fields of the row with the given id
// and restamps updated_at.
func UpdatePantryItem(db *sql.DB, id int64, in PantryItemInput) (*model.PantryItem, error) {
	if id <= 0 {
		return nil, validationf("item id must be > 0")
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}
	stamp := nowStamp()

	res, err := db.Exec(`
UPDATE pantry_items
SET name = ?, category = ?, on_hand_qty = ?, unit = ?, expiry = ?, min_qty = ?, updated_at = ?
WHERE id = ?
`, in.Name, nullIfBlank(in.Category), in.OnHandQty, nullIfBlank(in.Unit), nullIfBlank(in.Expiry), in.MinQty, stamp, id)
	if err != nil {
		return nil, fmt.Errorf("update pantry item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("read rows affected for pantry item %d: %w", id, err)
	}
	if affected == 0 {
		return nil, &NotFoundError{Entity: "pantry item", ID: id}
	}

	return &model.PantryItem{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		OnHandQty: in.OnHandQty,
		Unit:      in.Unit,
		Expiry:    in.Expiry,
		MinQty:    in.MinQty,
		UpdatedAt: stamp,
	}, nil
}

// DeletePantryItem reports whether a row was actually removed; a missing id
// is not an error.
func DeletePantryItem(db *sql.DB, id int64) (bool, error) {
	res, err := db.Exec(`DELETE FROM pantry_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete pantry item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read rows affected for delete %d: %w", id, err)
	}
	return affected > 0, nil
}
