package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jetty-boot/internal/games/jettyboot"
)

// SQLiteStore keeps the record in a single-row table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := preparePath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL DEFAULT '',
			high_score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the record. An empty table is an empty record.
func (s *SQLiteStore) Load() (jettyboot.Record, error) {
	var rec jettyboot.Record
	err := s.db.QueryRow(
		"SELECT name, high_score FROM profile WHERE id = 1",
	).Scan(&rec.Name, &rec.HighScore)

	if err == sql.ErrNoRows {
		return jettyboot.Record{}, nil
	}
	if err != nil {
		return jettyboot.Record{}, fmt.Errorf("storage: cannot query record: %w", err)
	}
	if rec.HighScore < 0 {
		score := rec.HighScore
		rec.HighScore = 0
		return rec, fmt.Errorf("%w: %d", ErrMalformedRecord, score)
	}
	return rec, nil
}

// Save replaces the record.
func (s *SQLiteStore) Save(rec jettyboot.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO profile (id, name, high_score, updated_at)
		 VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		     name = excluded.name,
		     high_score = excluded.high_score,
		     updated_at = excluded.updated_at`,
		rec.Name, rec.HighScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// UpdatedAt returns when the record was last saved.
// Returns the zero time if nothing was saved yet.
func (s *SQLiteStore) UpdatedAt() (time.Time, error) {
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT updated_at FROM profile WHERE id = 1",
	).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot query record time: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		return v, nil
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, nil
}

var _ RecordStore = (*SQLiteStore)(nil)
