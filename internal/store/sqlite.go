package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"kitsearch/internal/catalog"
)

const productSchema = `
CREATE TABLE products (
	id TEXT PRIMARY KEY,
	team TEXT,
	team_short TEXT,
	team_key TEXT,
	team_aliases TEXT,
	league TEXT,
	country TEXT,
	season TEXT,
	type TEXT,
	version TEXT,
	sleeve TEXT,
	price INTEGER,
	currency TEXT,
	images TEXT,
	thumbnail TEXT,
	source_url TEXT,
	album_id TEXT,
	catalog_id TEXT,
	raw_title TEXT,
	tags TEXT,
	confidence_score REAL,
	matched INTEGER,
	created_at TEXT
);
CREATE INDEX idx_products_team_key ON products(team_key);
CREATE INDEX idx_products_league ON products(league);
CREATE INDEX idx_products_country ON products(country);
CREATE INDEX idx_products_season ON products(season);
CREATE INDEX idx_products_version ON products(version);
`

// saveSQLite rebuilds the mirror from scratch. The table is small
// enough that dropping and re-inserting beats diffing.
func (s *Store) saveSQLite(products []catalog.Product) error {
	if err := os.MkdirAll(filepath.Dir(s.DBPath), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.DBPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`DROP TABLE IF EXISTS products`); err != nil {
		return fmt.Errorf("drop products table: %w", err)
	}
	if _, err := db.Exec(productSchema); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO products (
		id, team, team_short, team_key, team_aliases, league, country,
		season, type, version, sleeve, price, currency, images, thumbnail,
		source_url, album_id, catalog_id, raw_title, tags,
		confidence_score, matched, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		aliases, err := json.Marshal(p.TeamAliases)
		if err != nil {
			return fmt.Errorf("encode aliases for %s: %w", p.ID, err)
		}
		images, err := json.Marshal(p.Images)
		if err != nil {
			return fmt.Errorf("encode images for %s: %w", p.ID, err)
		}
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", p.ID, err)
		}

		matched := 0
		if p.Matched {
			matched = 1
		}
		if _, err := stmt.Exec(
			p.ID, p.Team, p.TeamShort, p.TeamKey, string(aliases),
			p.League, p.Country, p.Season, p.Type, p.Version, p.Sleeve,
			p.Price, p.Currency, string(images), p.Thumbnail,
			p.SourceURL, p.AlbumID, p.CatalogID, p.RawTitle, string(tags),
			p.ConfidenceScore, matched, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
