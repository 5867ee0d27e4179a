package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/internal/codec"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store keeps a catalog in a SQLite database file.
type Store struct {
	path string
	db   *sql.DB
	log  zerolog.Logger
}

// Open opens or creates the database at path and ensures the schema exists.
// The caller must Close the store.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &Store{
		path: path,
		db:   db,
		log:  log.With().Str("store", "sqlite").Str("path", path).Logger(),
	}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored records in catalog order. An empty table yields an
// empty slice.
func (s *Store) Load(report types.DiagnosticFunc) ([]*types.Record, error) {
	rows, err := s.db.Query("SELECT record_id, document FROM records ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := []*types.Record{}
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		r, err := codec.DecodeRecord([]byte(doc), report)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", id, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	s.log.Debug().Int("records", len(records)).Msg("catalog loaded")
	return records, nil
}

// Save replaces every stored row with records in a single transaction.
// Each row gets a fresh UUID v7.
func (s *Store) Save(records []*types.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO records (record_id, position, kind, phone_number, document) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		doc, err := codec.EncodeRecord(r)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating UUID v7: %w", err)
		}
		if _, err := stmt.Exec(id.String(), i, string(r.Kind()), r.PhoneNumber(), string(doc)); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing records: %w", err)
	}
	s.log.Debug().Int("records", len(records)).Msg("catalog saved")
	return nil
}

// CountByKind returns how many stored rows hold each kind.
func (s *Store) CountByKind() (map[types.Kind]int, error) {
	rows, err := s.db.Query("SELECT kind, COUNT(*) FROM records GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.Kind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[types.Kind(kind)] = n
	}
	return counts, rows.Err()
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
