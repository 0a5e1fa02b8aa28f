package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kitsearch/internal/catalog"
	"kitsearch/internal/config"
	"kitsearch/internal/ingest"
	"kitsearch/internal/store"
)

func newTestServer(t *testing.T, products []catalog.Product) *apiServer {
	t.Helper()

	cfg := config.DefaultConfig()
	dir := t.TempDir()
	cfg.Paths.ProductsJSON = filepath.Join(dir, "products.json")
	cfg.Paths.ProductsDB = ""
	cfg.Paths.RawCatalog = filepath.Join(dir, "raw_catalog.json")
	cfg.Paths.UnmatchedCSV = filepath.Join(dir, "unmatched.csv")
	cfg.Paths.ReportFile = filepath.Join(dir, "last_update.json")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	db, _ := catalog.NewDatabase(catalog.BuiltinTeams())
	builder := catalog.NewBuilder(db, catalog.DefaultPricing(), cfg.Resolver.IngestCutoff)
	pipeline := ingest.NewPipeline(builder, catalogVersions(cfg.Catalogs), logger)
	storage := store.New(cfg.Paths.ProductsJSON, cfg.Paths.ProductsDB)

	index := catalog.NewIndex(db, cfg.Resolver.QueryCutoff, cfg.Search.PerPage, cfg.Search.MaxPerPage)
	index.Load(products)

	telemetry := newTelemetry(context.Background(), logger, false)
	return newAPIServer(index, storage, pipeline, cfg, telemetry, logger)
}

func testProducts(t *testing.T) []catalog.Product {
	t.Helper()
	db, _ := catalog.NewDatabase(catalog.BuiltinTeams())
	builder := catalog.NewBuilder(db, catalog.DefaultPricing(), catalog.DefaultIngestCutoff)
	return []catalog.Product{
		builder.Build(catalog.Album{Title: "24-25 PSG Home Jersey"}, "fan", "fan", 0),
		builder.Build(catalog.Album{Title: "Arsenal Away 2024/25"}, "fan", "fan", 1),
		builder.Build(catalog.Album{Title: "Mystery Cup Final Edition"}, "fan", "fan", 2),
	}
}

func TestHandleSearch(t *testing.T) {
	server := newTestServer(t, testProducts(t))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=psg", nil)
	rec := httptest.NewRecorder()
	server.handleSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp catalog.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Results[0].TeamKey != "paris saint-germain" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestHandleSearchRejectsBadPage(t *testing.T) {
	server := newTestServer(t, testProducts(t))

	req := httptest.NewRequest(http.MethodGet, "/api/search?page=abc", nil)
	rec := httptest.NewRecorder()
	server.handleSearch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleProduct(t *testing.T) {
	products := testProducts(t)
	server := newTestServer(t, products)

	req := httptest.NewRequest(http.MethodGet, "/api/product/"+products[0].ID, nil)
	rec := httptest.NewRecorder()
	server.handleProduct(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/product/missing", nil)
	rec = httptest.NewRecorder()
	server.handleProduct(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	server := newTestServer(t, testProducts(t))
	handler := server.requireAdmin(server.handleUnmatched)

	req := httptest.NewRequest(http.MethodGet, "/admin/unmatched", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without auth = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/unmatched", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status with bad password = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/unmatched", nil)
	req.SetBasicAuth("admin", "kitsearch")
	rec = httptest.NewRecorder()
	handler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with valid auth = %d", rec.Code)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 {
		t.Fatalf("unmatched count = %d", body.Count)
	}
}

func TestHandleFixTeam(t *testing.T) {
	products := testProducts(t)
	server := newTestServer(t, products)

	var unmatchedID string
	for _, p := range products {
		if !p.Matched {
			unmatchedID = p.ID
		}
	}
	if unmatchedID == "" {
		t.Fatal("fixture has no unmatched product")
	}

	body := `{"product_id": "` + unmatchedID + `", "team_key": "arsenal"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/fix-team", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.handleFixTeam(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	fixed, err := server.index.Product(unmatchedID)
	if err != nil || !fixed.Matched || fixed.TeamKey != "arsenal" {
		t.Fatalf("fixed = %+v, %v", fixed, err)
	}

	// The fix is persisted.
	saved, err := server.storage.LoadProducts()
	if err != nil {
		t.Fatalf("LoadProducts: %v", err)
	}
	found := false
	for _, p := range saved {
		if p.ID == unmatchedID && p.Matched {
			found = true
		}
	}
	if !found {
		t.Fatal("fix not persisted to the snapshot")
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/fix-team", strings.NewReader(`{"product_id": "missing", "team_key": "arsenal"}`))
	rec = httptest.NewRecorder()
	server.handleFixTeam(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for missing product = %d", rec.Code)
	}
}

func TestHandleReadiness(t *testing.T) {
	server := newTestServer(t, testProducts(t))

	req := httptest.NewRequest(http.MethodGet, "/api/ready", nil)
	rec := httptest.NewRecorder()
	server.handleReadiness(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestParseIntDefault(t *testing.T) {
	if v, err := parseIntDefault("", 7); err != nil || v != 7 {
		t.Fatalf("empty = %d, %v", v, err)
	}
	if v, err := parseIntDefault("12", 7); err != nil || v != 12 {
		t.Fatalf("12 = %d, %v", v, err)
	}
	if _, err := parseIntDefault("abc", 7); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}
