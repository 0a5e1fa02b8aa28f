package ingest

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"kitsearch/internal/catalog"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	db, _ := catalog.NewDatabase(catalog.BuiltinTeams())
	builder := catalog.NewBuilder(db, catalog.DefaultPricing(), catalog.DefaultIngestCutoff)
	return NewPipeline(builder, map[string]string{"fan": "fan", "player": "player"}, nil)
}

func sampleRaw() RawData {
	return RawData{
		ScrapedAt: "2026-08-01T00:00:00Z",
		Catalogs: []RawCatalog{
			{
				CatalogID: "fan",
				Version:   "fan",
				Albums: []catalog.Album{
					{Title: "24-25 PSG Home Jersey", URL: "https://example.com/1"},
					{Title: "Arsenal Away 2024/25", URL: "https://example.com/2"},
					{Title: "Mystery Cup Final Edition", URL: "https://example.com/3"},
				},
			},
			{
				CatalogID: "player",
				Albums: []catalog.Album{
					{Title: "24-25 PSG Home Player", URL: "https://example.com/4"},
					{Title: ""},
				},
			},
		},
	}
}

func TestBuildProducts(t *testing.T) {
	p := newTestPipeline(t)
	products, unmatched := p.Build(sampleRaw())

	if len(products) != 4 {
		t.Fatalf("products = %d, want 4 (empty titles skipped)", len(products))
	}
	if len(unmatched) != 1 || unmatched[0].Title != "Mystery Cup Final Edition" {
		t.Fatalf("unmatched = %+v", unmatched)
	}

	// IDs are unique across catalogs.
	seen := make(map[string]bool)
	for _, prod := range products {
		if seen[prod.ID] {
			t.Fatalf("duplicate id %q", prod.ID)
		}
		seen[prod.ID] = true
	}

	// The raw catalog without a version falls back to the configured one.
	foundPlayer := false
	for _, prod := range products {
		if prod.CatalogID == "player" {
			foundPlayer = true
			if prod.Version != "player" {
				t.Fatalf("player catalog product has version %q", prod.Version)
			}
		}
	}
	if !foundPlayer {
		t.Fatal("no product from the player catalog")
	}

	// Sorted by team name.
	for i := 1; i < len(products); i++ {
		if products[i-1].Team > products[i].Team {
			t.Fatalf("products not sorted by team: %q before %q", products[i-1].Team, products[i].Team)
		}
	}
}

func TestRunReportsDiff(t *testing.T) {
	p := newTestPipeline(t)

	products, _, first := p.Run(sampleRaw(), nil)
	if first.TotalProducts != 4 || first.NewProducts != 4 || first.RemovedProducts != 0 {
		t.Fatalf("first report = %+v", first)
	}
	if first.MatchedProducts != 3 {
		t.Fatalf("matched = %d", first.MatchedProducts)
	}
	if first.MatchRate != 0.75 {
		t.Fatalf("match rate = %v", first.MatchRate)
	}
	if first.RunID == "" || !first.Success {
		t.Fatalf("report = %+v", first)
	}

	// Rebuilding from the same raw data changes nothing.
	_, _, second := p.Run(sampleRaw(), products)
	if second.NewProducts != 0 || second.RemovedProducts != 0 {
		t.Fatalf("second report = %+v", second)
	}

	// Dropping a catalog removes its products.
	raw := sampleRaw()
	raw.Catalogs = raw.Catalogs[:1]
	_, _, third := p.Run(raw, products)
	if third.RemovedProducts == 0 {
		t.Fatalf("third report = %+v", third)
	}
}

func TestWriteUnmatchedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "unmatched.csv")
	rows := []Unmatched{
		{Catalog: "fan", Title: "Mystery Shirt", URL: "https://example.com/9", Confidence: 0.42, BestGuess: "Arsenal FC"},
	}
	if err := WriteUnmatchedCSV(path, rows); err != nil {
		t.Fatalf("WriteUnmatchedCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	wantHeader := []string{"catalog", "title", "url", "confidence", "best_guess"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header = %v", records[0])
		}
	}
	if records[1][3] != "0.42" || records[1][4] != "Arsenal FC" {
		t.Fatalf("row = %v", records[1])
	}
}

func TestWriteAndReadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "last_update.json")
	report := Report{
		RunID:         "test-run",
		TotalProducts: 10,
		MatchRate:     0.9,
		Success:       true,
	}
	if err := WriteReport(path, report); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	loaded, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if loaded.RunID != "test-run" || loaded.TotalProducts != 10 || !loaded.Success {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestLoadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw_catalog.json")
	content, err := json.Marshal(sampleRaw())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	raw, err := LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if len(raw.Catalogs) != 2 || len(raw.Catalogs[0].Albums) != 3 {
		t.Fatalf("raw = %+v", raw)
	}

	if _, err := LoadRaw(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing raw catalog")
	}
}
