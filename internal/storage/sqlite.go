// Package storage provides SQLite-based persistence for scene compositions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies,
// which matters on the retro-handheld targets this kit deploys to.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/thinthought/spyke/internal/composition"
)

// ErrNoScene is returned when a named scene does not exist in the store.
var ErrNoScene = errors.New("storage: scene not found")

// Store manages the SQLite database connection for scene persistence.
type Store struct {
	db *sql.DB
}

// SceneEntry describes a stored scene without its node data.
type SceneEntry struct {
	ID        int64
	Name      string
	Nodes     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			nodes INTEGER NOT NULL DEFAULT 0,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scenes_name ON scenes(name);
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

// SaveScene stores a composition under the given name, replacing any
// previous scene with that name.
func (s *Store) SaveScene(name string, doc composition.Document) error {
	data, err := composition.Encode(doc)
	if err != nil {
		return fmt.Errorf("storage: cannot encode scene %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO scenes (name, nodes, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   nodes = excluded.nodes,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		name, len(doc.Nodes), string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save scene %q: %w", name, err)
	}
	return nil
}

// LoadScene retrieves a stored composition by name.
func (s *Store) LoadScene(name string) (composition.Document, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT data FROM scenes WHERE name = ?",
		name,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return composition.Document{}, fmt.Errorf("%w: %q", ErrNoScene, name)
	}
	if err != nil {
		return composition.Document{}, fmt.Errorf("storage: cannot load scene %q: %w", name, err)
	}

	doc, err := composition.Decode([]byte(data))
	if err != nil {
		return composition.Document{}, fmt.Errorf("storage: scene %q is corrupt: %w", name, err)
	}
	return doc, nil
}

// ListScenes returns all stored scenes ordered by name.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, nodes, updated_at
		 FROM scenes
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var entries []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Nodes, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteScene removes a stored scene by name.
func (s *Store) DeleteScene(name string) error {
	result, err := s.db.Exec("DELETE FROM scenes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scene %q: %w", name, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNoScene, name)
	}
	return nil
}

// Exists reports whether a scene with the given name is stored.
func (s *Store) Exists(name string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM scenes WHERE name = ?", name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query scene %q: %w", name, err)
	}
	return true, nil
}
