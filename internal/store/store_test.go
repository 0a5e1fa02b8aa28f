package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"kitsearch/internal/catalog"
)

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:        "fan_arsenal_202425_hom_0000",
			Team:      "Arsenal FC",
			TeamShort: "Arsenal",
			TeamKey:   "arsenal",
			League:    "Premier League",
			Country:   "England",
			Season:    "2024-25",
			Type:      "Home",
			Version:   "fan",
			Sleeve:    "short",
			Price:     25,
			Currency:  "EUR",
			Images:    []string{"https://example.com/1.jpg"},
			RawTitle:  "Arsenal Home 24-25",
			Tags:      []string{"arsenal", "home"},
			Matched:   true,
		},
		{
			ID:        "fan_unknown__unk_0001",
			Team:      "Unknown",
			TeamShort: "Unknown",
			Version:   "fan",
			Sleeve:    "short",
			Price:     25,
			Currency:  "EUR",
			RawTitle:  "Mystery Shirt",
		},
	}
}

func TestLoadProductsMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "products.json"), "")
	products, err := s.LoadProducts()
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if products != nil {
		t.Fatalf("expected nil for a missing file, got %d products", len(products))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	s := New(path, "")

	if err := s.SaveProducts(sampleProducts()); err != nil {
		t.Fatalf("SaveProducts: %v", err)
	}

	// The snapshot is a flat JSON array.
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var flat []catalog.Product
	if err := json.Unmarshal(content, &flat); err != nil {
		t.Fatalf("snapshot is not a flat array: %v", err)
	}

	loaded, err := s.LoadProducts()
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d products", len(loaded))
	}
	if loaded[0].ID != "fan_arsenal_202425_hom_0000" || !loaded[0].Matched {
		t.Fatalf("first product = %+v", loaded[0])
	}
	if loaded[1].TeamKey != "" || loaded[1].Matched {
		t.Fatalf("second product = %+v", loaded[1])
	}
}

func TestSaveProductsSQLiteMirror(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "products.db")
	s := New(filepath.Join(dir, "products.json"), dbPath)

	if err := s.SaveProducts(sampleProducts()); err != nil {
		t.Fatalf("SaveProducts: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	var matched int
	if err := db.QueryRow(`SELECT matched FROM products WHERE id = ?`, "fan_arsenal_202425_hom_0000").Scan(&matched); err != nil {
		t.Fatalf("select matched: %v", err)
	}
	if matched != 1 {
		t.Fatalf("matched = %d", matched)
	}

	// Saving again must rebuild, not append.
	if err := s.SaveProducts(sampleProducts()[:1]); err != nil {
		t.Fatalf("second SaveProducts: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		t.Fatalf("recount: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after rebuild = %d, want 1", count)
	}
}
