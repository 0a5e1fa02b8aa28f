// Package ingest turns scraped raw catalogs into the enriched product
// snapshot, tracking what each run changed.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"kitsearch/internal/catalog"
)

// RawData is the scraper's output file.
type RawData struct {
	ScrapedAt string       `json:"scraped_at"`
	Catalogs  []RawCatalog `json:"catalogs"`
}

// RawCatalog is one upstream catalog with its albums.
type RawCatalog struct {
	CatalogID   string          `json:"catalog_id"`
	CatalogName string          `json:"catalog_name"`
	URL         string          `json:"url"`
	Version     string          `json:"version"`
	Albums      []catalog.Album `json:"albums"`
}

// Unmatched records a product whose title did not resolve to a team,
// for manual review.
type Unmatched struct {
	Catalog    string
	Title      string
	URL        string
	Confidence float64
	BestGuess  string
}

// Report summarizes one catalog build run.
type Report struct {
	RunID           string   `json:"run_id"`
	StartedAt       string   `json:"started_at"`
	FinishedAt      string   `json:"finished_at"`
	DurationSeconds float64  `json:"duration_s"`
	TotalProducts   int      `json:"total_products"`
	NewProducts     int      `json:"new_products"`
	RemovedProducts int      `json:"removed_products"`
	MatchedProducts int      `json:"matched_products"`
	MatchRate       float64  `json:"match_rate"`
	Errors          []string `json:"errors"`
	Success         bool     `json:"success"`
}

// Pipeline builds products out of raw catalogs.
type Pipeline struct {
	builder *catalog.Builder
	// versions maps catalog IDs to their product version, used when a
	// raw catalog entry carries no version of its own.
	versions map[string]string
	logger   *slog.Logger
}

func NewPipeline(builder *catalog.Builder, versions map[string]string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{builder: builder, versions: versions, logger: logger}
}

// LoadRaw reads the scraper output file.
func LoadRaw(path string) (RawData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return RawData{}, fmt.Errorf("read raw catalog: %w", err)
	}
	var raw RawData
	if err := json.Unmarshal(content, &raw); err != nil {
		return RawData{}, fmt.Errorf("parse raw catalog: %w", err)
	}
	return raw, nil
}

// Build converts every album into a product. The index runs
// monotonically across all catalogs so IDs stay unique within a run;
// the result is sorted by team, season, then version.
func (p *Pipeline) Build(raw RawData) ([]catalog.Product, []Unmatched) {
	var products []catalog.Product
	var unmatched []Unmatched

	index := 0
	for _, rc := range raw.Catalogs {
		version := rc.Version
		if version == "" {
			version = p.versions[rc.CatalogID]
		}
		if version == "" {
			version = "fan"
		}
		for _, album := range rc.Albums {
			if album.Title == "" {
				continue
			}
			prod := p.builder.Build(album, rc.CatalogID, version, index)
			index++
			products = append(products, prod)
			if !prod.Matched {
				unmatched = append(unmatched, Unmatched{
					Catalog:    rc.CatalogID,
					Title:      album.Title,
					URL:        album.URL,
					Confidence: prod.ConfidenceScore,
					BestGuess:  prod.Team,
				})
			}
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Season != b.Season {
			// Newest season first within a team.
			return a.Season > b.Season
		}
		return a.Version < b.Version
	})

	return products, unmatched
}

// Run builds a fresh snapshot and reports the diff against the
// previous one.
func (p *Pipeline) Run(raw RawData, previous []catalog.Product) ([]catalog.Product, []Unmatched, Report) {
	started := time.Now()

	products, unmatched := p.Build(raw)

	prevIDs := make(map[string]struct{}, len(previous))
	for _, prev := range previous {
		prevIDs[prev.ID] = struct{}{}
	}
	currIDs := make(map[string]struct{}, len(products))
	newCount := 0
	for _, prod := range products {
		currIDs[prod.ID] = struct{}{}
		if _, ok := prevIDs[prod.ID]; !ok {
			newCount++
		}
	}
	removed := 0
	for id := range prevIDs {
		if _, ok := currIDs[id]; !ok {
			removed++
		}
	}

	matched := len(products) - len(unmatched)
	rate := 0.0
	if len(products) > 0 {
		rate = float64(matched) / float64(len(products))
	}

	finished := time.Now()
	report := Report{
		RunID:           uuid.NewString(),
		StartedAt:       started.UTC().Format(time.RFC3339),
		FinishedAt:      finished.UTC().Format(time.RFC3339),
		DurationSeconds: finished.Sub(started).Seconds(),
		TotalProducts:   len(products),
		NewProducts:     newCount,
		RemovedProducts: removed,
		MatchedProducts: matched,
		MatchRate:       rate,
		Success:         true,
	}

	p.logger.Info("catalog build finished",
		"run_id", report.RunID,
		"total", report.TotalProducts,
		"new", report.NewProducts,
		"removed", report.RemovedProducts,
		"match_rate", report.MatchRate,
	)

	return products, unmatched, report
}

var unmatchedHeader = []string{"catalog", "title", "url", "confidence", "best_guess"}

// WriteUnmatchedCSV writes the review file for unmatched products.
func WriteUnmatchedCSV(path string, rows []Unmatched) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create unmatched csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(unmatchedHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Catalog,
			row.Title,
			row.URL,
			strconv.FormatFloat(row.Confidence, 'f', 2, 64),
			row.BestGuess,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteReport persists the run report for the stats endpoint.
func WriteReport(path string, report Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadReport loads the last run report if one exists.
func ReadReport(path string) (Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}
	var report Report
	if err := json.Unmarshal(content, &report); err != nil {
		return Report{}, fmt.Errorf("parse report: %w", err)
	}
	return report, nil
}
