// Package storage provides the SQLite-backed gateway for ships, fleets and attacks.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/fleetsim/internal/combat"
)

// MemoryURL opens a private in-memory database.
const MemoryURL = ":memory:"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

var _ combat.Store = (*Store)(nil)

// Open creates or opens the database named by url. Accepted forms are
// sqlite://path, sqlite:path, a bare path, or :memory:. Parent directories
// are created when needed and migrations run before returning.
func Open(url string) (*Store, error) {
	path, err := pathFromURL(url)
	if err != nil {
		return nil, err
	}

	if path != MemoryURL {
		// Expand ~ to home directory
		if path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", fileDSN(path))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Turns run their statements one after another; a single connection also
	// keeps an in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// pathFromURL strips the sqlite scheme from url. A query string is only
// recognised after a scheme; bare paths are taken literally.
func pathFromURL(url string) (string, error) {
	path := strings.TrimSpace(url)
	scheme := false
	switch {
	case strings.HasPrefix(path, "sqlite://"):
		path, scheme = strings.TrimPrefix(path, "sqlite://"), true
	case strings.HasPrefix(path, "sqlite:"):
		path, scheme = strings.TrimPrefix(path, "sqlite:"), true
	}
	if i := strings.IndexByte(path, '?'); scheme && i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", errors.New("storage: empty database url")
	}
	return path, nil
}

// uriEscaper escapes the characters SQLite's URI parser treats specially.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// fileDSN builds a file: URI for path with foreign keys enabled on open.
func fileDSN(path string) string {
	return "file:" + uriEscaper.Replace(path) + "?_pragma=foreign_keys(1)"
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS fleets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS ships (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			fleet TEXT REFERENCES fleets(id),
			integrity INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_ships_fleet ON ships(fleet);

		CREATE TABLE IF NOT EXISTS attacks (
			id INTEGER PRIMARY KEY,
			target TEXT REFERENCES ships(id) ON DELETE SET NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ships returns the ship repository.
func (s *Store) Ships() combat.ShipRepository { return shipRepo{db: s.db} }

// Fleets returns the fleet repository.
func (s *Store) Fleets() combat.FleetRepository { return fleetRepo{db: s.db} }

// Attacks returns the attack repository.
func (s *Store) Attacks() combat.AttackRepository { return attackRepo{db: s.db} }

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
