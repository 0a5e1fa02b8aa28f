// Package store persists the product catalog: a JSON snapshot that the
// server loads at startup, mirrored into a SQLite database for external
// tooling.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"kitsearch/internal/catalog"
)

// Store writes products to a JSON file and, when DBPath is set, a
// SQLite mirror next to it.
type Store struct {
	JSONPath string
	DBPath   string
}

func New(jsonPath, dbPath string) *Store {
	return &Store{JSONPath: jsonPath, DBPath: dbPath}
}

// LoadProducts reads the JSON snapshot, a flat array of products. A
// missing file is not an error; it just means no catalog has been
// built yet.
func (s *Store) LoadProducts() ([]catalog.Product, error) {
	content, err := os.ReadFile(s.JSONPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read products: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(content, &products); err != nil {
		return nil, fmt.Errorf("parse products: %w", err)
	}
	return products, nil
}

// SaveProducts writes the JSON snapshot atomically and refreshes the
// SQLite mirror.
func (s *Store) SaveProducts(products []catalog.Product) error {
	if err := s.saveJSON(products); err != nil {
		return err
	}
	if s.DBPath == "" {
		return nil
	}
	return s.saveSQLite(products)
}

func (s *Store) saveJSON(products []catalog.Product) error {
	if err := os.MkdirAll(filepath.Dir(s.JSONPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if products == nil {
		products = []catalog.Product{}
	}
	content, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	tmp := s.JSONPath + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	if err := os.Rename(tmp, s.JSONPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace products: %w", err)
	}
	return nil
}
