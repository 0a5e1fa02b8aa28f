package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// AppConfig captures configuration for the server, data paths, team
// resolution, pricing, and search behavior.
type AppConfig struct {
	Server   ServerConfig    `toml:"server" yaml:"server"`
	Paths    PathsConfig     `toml:"paths" yaml:"paths"`
	Resolver ResolverConfig  `toml:"resolver" yaml:"resolver"`
	Pricing  PricingConfig   `toml:"pricing" yaml:"pricing"`
	Search   SearchConfig    `toml:"search" yaml:"search"`
	Admin    AdminConfig     `toml:"admin" yaml:"admin"`
	Logging  LoggingConfig   `toml:"logging" yaml:"logging"`
	Metrics  MetricsConfig   `toml:"metrics" yaml:"metrics"`
	Catalogs []CatalogConfig `toml:"catalogs" yaml:"catalogs"`
}

// ServerConfig controls network settings.
type ServerConfig struct {
	Listen string `toml:"listen" yaml:"listen"`
}

// PathsConfig configures the on-disk layout.
type PathsConfig struct {
	ProductsJSON string `toml:"products_json" yaml:"products_json"`
	ProductsDB   string `toml:"products_db" yaml:"products_db"`
	RawCatalog   string `toml:"raw_catalog" yaml:"raw_catalog"`
	UnmatchedCSV string `toml:"unmatched_csv" yaml:"unmatched_csv"`
	ReportFile   string `toml:"report_file" yaml:"report_file"`
	TeamsFile    string `toml:"teams_file" yaml:"teams_file"`
}

// ResolverConfig holds the fuzzy-match score cutoffs (0-100).
type ResolverConfig struct {
	IngestCutoff int `toml:"ingest_cutoff" yaml:"ingest_cutoff"`
	QueryCutoff  int `toml:"query_cutoff" yaml:"query_cutoff"`
}

// PricingConfig is the unit price table in euros.
type PricingConfig struct {
	Fan        int `toml:"fan" yaml:"fan"`
	Player     int `toml:"player" yaml:"player"`
	PlayerLong int `toml:"player_long" yaml:"player_long"`
	Retro      int `toml:"retro" yaml:"retro"`
	Kit        int `toml:"kit" yaml:"kit"`
}

// SearchConfig controls result paging.
type SearchConfig struct {
	PerPage    int `toml:"per_page" yaml:"per_page"`
	MaxPerPage int `toml:"max_per_page" yaml:"max_per_page"`
}

// AdminConfig holds the basic-auth credentials for the admin endpoints.
type AdminConfig struct {
	User     string `toml:"user" yaml:"user"`
	Password string `toml:"password" yaml:"password"`
}

// LoggingConfig toggles observability around requests.
type LoggingConfig struct {
	RequestLogs *bool `toml:"request_logs" yaml:"request_logs"`
}

// MetricsConfig enables counters/telemetry endpoints.
type MetricsConfig struct {
	Enabled *bool `toml:"enabled" yaml:"enabled"`
}

// CatalogConfig describes one upstream catalog feed.
type CatalogConfig struct {
	ID      string `toml:"id" yaml:"id"`
	Name    string `toml:"name" yaml:"name"`
	URL     string `toml:"url" yaml:"url"`
	Version string `toml:"version" yaml:"version"`
}

// DefaultConfig returns the baseline configuration used when no file is supplied.
func DefaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{Listen: ":8001"},
		Paths: PathsConfig{
			ProductsJSON: "data/products.json",
			ProductsDB:   "data/products.db",
			RawCatalog:   "data/raw_catalog.json",
			UnmatchedCSV: "logs/unmatched.csv",
			ReportFile:   "logs/last_update.json",
		},
		Resolver: ResolverConfig{IngestCutoff: 75, QueryCutoff: 85},
		Pricing:  PricingConfig{Fan: 25, Player: 30, PlayerLong: 35, Retro: 30, Kit: 25},
		Search:   SearchConfig{PerPage: 60, MaxPerPage: 200},
		Admin:    AdminConfig{User: "admin", Password: "kitsearch"},
		Logging:  LoggingConfig{RequestLogs: boolPtr(true)},
		Metrics:  MetricsConfig{Enabled: boolPtr(true)},
		Catalogs: []CatalogConfig{
			{ID: "fan", Name: "Fan Jerseys", Version: "fan"},
			{ID: "player", Name: "Player Version", Version: "player"},
			{ID: "retro", Name: "Retro Jerseys", Version: "retro"},
			{ID: "kit", Name: "Full Kits", Version: "kit"},
		},
	}
}

// Load reads the provided config path, merging it onto the defaults.
func Load(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var fileCfg AppConfig
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &fileCfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &fileCfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return AppConfig{}, errors.New("config file must be .toml, .yaml, or .yml")
	}

	merged := mergeConfig(cfg, fileCfg)
	return merged, nil
}

func mergeConfig(base, override AppConfig) AppConfig {
	if override.Server.Listen != "" {
		base.Server.Listen = override.Server.Listen
	}

	if override.Paths.ProductsJSON != "" {
		base.Paths.ProductsJSON = override.Paths.ProductsJSON
	}
	if override.Paths.ProductsDB != "" {
		base.Paths.ProductsDB = override.Paths.ProductsDB
	}
	if override.Paths.RawCatalog != "" {
		base.Paths.RawCatalog = override.Paths.RawCatalog
	}
	if override.Paths.UnmatchedCSV != "" {
		base.Paths.UnmatchedCSV = override.Paths.UnmatchedCSV
	}
	if override.Paths.ReportFile != "" {
		base.Paths.ReportFile = override.Paths.ReportFile
	}
	if override.Paths.TeamsFile != "" {
		base.Paths.TeamsFile = override.Paths.TeamsFile
	}

	if override.Resolver.IngestCutoff != 0 {
		base.Resolver.IngestCutoff = override.Resolver.IngestCutoff
	}
	if override.Resolver.QueryCutoff != 0 {
		base.Resolver.QueryCutoff = override.Resolver.QueryCutoff
	}

	if override.Pricing.Fan != 0 {
		base.Pricing.Fan = override.Pricing.Fan
	}
	if override.Pricing.Player != 0 {
		base.Pricing.Player = override.Pricing.Player
	}
	if override.Pricing.PlayerLong != 0 {
		base.Pricing.PlayerLong = override.Pricing.PlayerLong
	}
	if override.Pricing.Retro != 0 {
		base.Pricing.Retro = override.Pricing.Retro
	}
	if override.Pricing.Kit != 0 {
		base.Pricing.Kit = override.Pricing.Kit
	}

	if override.Search.PerPage != 0 {
		base.Search.PerPage = override.Search.PerPage
	}
	if override.Search.MaxPerPage != 0 {
		base.Search.MaxPerPage = override.Search.MaxPerPage
	}

	if override.Admin.User != "" {
		base.Admin.User = override.Admin.User
	}
	if override.Admin.Password != "" {
		base.Admin.Password = override.Admin.Password
	}

	if override.Logging.RequestLogs != nil {
		base.Logging.RequestLogs = override.Logging.RequestLogs
	}

	if override.Metrics.Enabled != nil {
		base.Metrics.Enabled = override.Metrics.Enabled
	}

	if len(override.Catalogs) > 0 {
		base.Catalogs = override.Catalogs
	}

	return base
}

func boolPtr(v bool) *bool {
	return &v
}
