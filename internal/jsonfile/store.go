// Package jsonfile stores a catalog as a single JSON document on disk.
// Writes replace the whole document using the temp-file, fsync, rename
// pattern so a failed save leaves the previous document intact.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/contacts/internal/codec"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store reads and writes the catalog document at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a Store for path. The file is not touched until Load or Save.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("store", "json").Str("path", path).Logger()}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the document. A missing or empty file yields an
// empty slice without error.
func (s *Store) Load(report types.DiagnosticFunc) ([]*types.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Msg("no catalog document, starting empty")
		return []*types.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	records, err := codec.Decode(data, report)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	s.log.Debug().Int("records", len(records)).Msg("catalog loaded")
	return records, nil
}

// Save encodes records and atomically replaces the document.
func (s *Store) Save(records []*types.Record) error {
	data, err := codec.Encode(records)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := writeFile(s.path, data); err != nil {
		return err
	}
	s.log.Debug().Int("records", len(records)).Msg("catalog saved")
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}

// defaultFileMode applies to a document that does not exist yet.
const defaultFileMode os.FileMode = 0o644

// writeFile atomically writes data to path. An existing document keeps its
// permissions.
func writeFile(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting file mode: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
