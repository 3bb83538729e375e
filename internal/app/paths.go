package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const dbFileName = "inventory.db"

// DefaultDBPath is the store file used when no override is configured: a
// fixed filename in the current working directory.
func DefaultDBPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
