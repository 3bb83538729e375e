package service

import (
	"database/sql"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// Fixed-width UTC stamp so text ordering matches time ordering.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

func nowStamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

// nullIfBlank trims s and maps the empty result to NULL, keeping optional
// text columns clean.
func nullIfBlank(s string) sql.NullString {
	t := strings.TrimSpace(s)
	return sql.NullString{String: t, Valid: t != ""}
}

func validateNonNegative(name string, value int) error {
	if value < 0 {
		return validationf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeCents(name string, cents int64) error {
	if cents < 0 {
		return validationf("%s must be >= 0", name)
	}
	return nil
}
