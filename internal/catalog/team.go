package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Team is one entry in the static team database.
type Team struct {
	Key     string   `json:"key" toml:"key" yaml:"key"`
	Name    string   `json:"name" toml:"name" yaml:"name"`
	Short   string   `json:"short" toml:"short" yaml:"short"`
	Aliases []string `json:"aliases" toml:"aliases" yaml:"aliases"`
	League  string   `json:"league" toml:"league" yaml:"league"`
	Country string   `json:"country" toml:"country" yaml:"country"`
}

type aliasEntry struct {
	norm string
	key  string
}

// Database indexes teams by key and by normalized alias. The alias
// index also registers each team's key, canonical name, and short name
// so any of them resolves directly.
type Database struct {
	teams   map[string]Team
	aliases map[string]string
	ordered []aliasEntry
}

// NewDatabase builds the alias index. When two teams claim the same
// alias the later registration wins; every such collision is returned
// so the caller can surface it instead of silently re-pointing the
// alias.
func NewDatabase(teams []Team) (*Database, []string) {
	db := &Database{
		teams:   make(map[string]Team, len(teams)),
		aliases: make(map[string]string),
	}

	var collisions []string
	register := func(alias, key string) {
		norm := Normalize(alias)
		if norm == "" {
			return
		}
		if prev, ok := db.aliases[norm]; ok && prev != key {
			collisions = append(collisions, fmt.Sprintf("alias %q moved from %q to %q", norm, prev, key))
		}
		db.aliases[norm] = key
	}

	for _, t := range teams {
		db.teams[t.Key] = t
		for _, alias := range t.Aliases {
			register(alias, t.Key)
		}
		register(t.Key, t.Key)
		register(t.Name, t.Key)
		register(t.Short, t.Key)
	}

	db.ordered = make([]aliasEntry, 0, len(db.aliases))
	for norm, key := range db.aliases {
		db.ordered = append(db.ordered, aliasEntry{norm: norm, key: key})
	}
	// Longest first so containment scans hit the most specific alias;
	// alphabetical within a length for determinism.
	sort.Slice(db.ordered, func(i, j int) bool {
		li := utf8.RuneCountInString(db.ordered[i].norm)
		lj := utf8.RuneCountInString(db.ordered[j].norm)
		if li != lj {
			return li > lj
		}
		return db.ordered[i].norm < db.ordered[j].norm
	})

	return db, collisions
}

// Get returns the team registered under the given key.
func (db *Database) Get(key string) (Team, bool) {
	t, ok := db.teams[key]
	return t, ok
}

// Lookup resolves a normalized alias to its team.
func (db *Database) Lookup(alias string) (Team, bool) {
	key, ok := db.aliases[Normalize(alias)]
	if !ok {
		return Team{}, false
	}
	return db.Get(key)
}

// Len reports the number of registered teams.
func (db *Database) Len() int {
	return len(db.teams)
}

type teamFile struct {
	Teams []Team `toml:"teams" yaml:"teams"`
}

// LoadTeamsFile reads a team database from a TOML or YAML file,
// replacing the builtin seed data.
func LoadTeamsFile(path string) ([]Team, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teams file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var file teamFile
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, errors.New("teams file must be .toml, .yaml, or .yml")
	}

	if len(file.Teams) == 0 {
		return nil, errors.New("teams file contains no teams")
	}
	for i, t := range file.Teams {
		if t.Key == "" || t.Name == "" {
			return nil, fmt.Errorf("team %d: key and name are required", i)
		}
	}
	return file.Teams, nil
}
