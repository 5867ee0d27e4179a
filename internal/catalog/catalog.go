// Package catalog holds the ordered, in-memory collection of contact records
// and connects it to a persistence Store.
//
// A Catalog is not safe for concurrent use; callers serialize access.
package catalog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store persists a whole catalog. Load on a target that does not exist yet
// returns an empty slice and no error.
type Store interface {
	Load(report types.DiagnosticFunc) ([]*types.Record, error)
	Save(records []*types.Record) error
	Close() error
}

// kindCounter is implemented by stores that count records by kind on their
// own.
type kindCounter interface {
	CountByKind() (map[types.Kind]int, error)
}

// Match is a record selected by FindMatching together with its position in
// the catalog at the time of the search.
type Match struct {
	Index  int
	Record *types.Record
}

// Catalog is an ordered sequence of records. Insertion order is the
// reference order used by Get and RemoveAt.
type Catalog struct {
	records []*types.Record
	store   Store // nil when there is no persistence target.
	log     zerolog.Logger
	sink    types.DiagnosticFunc
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for diagnostics and lifecycle events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Catalog) { c.log = log }
}

// WithDiagnostics forwards every validation diagnostic to fn in addition to
// logging it.
func WithDiagnostics(fn types.DiagnosticFunc) Option {
	return func(c *Catalog) { c.sink = fn }
}

// New creates an empty catalog backed by store. A nil store makes Load and
// Save no-ops.
func New(store Store, opts ...Option) *Catalog {
	c := &Catalog{
		records: []*types.Record{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.store = store
	return c
}

// Diagnostics returns the callback the catalog attaches to its records. Each
// diagnostic goes to the WithDiagnostics sink when one is set and is logged at
// debug level; without a sink it is logged at warn level.
func (c *Catalog) Diagnostics() types.DiagnosticFunc {
	return func(d types.Diagnostic) {
		level := zerolog.WarnLevel
		if c.sink != nil {
			level = zerolog.DebugLevel
		}
		c.log.WithLevel(level).
			Str("kind", string(d.Kind)).
			Str("field", d.Field).
			Str("input", d.Input).
			Msg(d.Err.Error())
		if c.sink != nil {
			c.sink(d)
		}
	}
}

// Load replaces the catalog contents with the stored records.
func (c *Catalog) Load() error {
	if c.store == nil {
		return nil
	}
	records, err := c.store.Load(c.Diagnostics())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	c.records = records
	c.log.Debug().Int("records", len(records)).Msg("catalog loaded")
	return nil
}

// Save writes the full catalog to the store.
func (c *Catalog) Save() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(c.records); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Close releases the store.
func (c *Catalog) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Persistent reports whether the catalog has a persistence target.
func (c *Catalog) Persistent() bool {
	return c.store != nil
}

// Append adds r at the end of the catalog. Records without a diagnostics
// callback get the catalog's.
func (c *Catalog) Append(r *types.Record) error {
	if r == nil {
		return types.ErrNilRecord
	}
	if !r.HasDiagnostics() {
		r.SetDiagnostics(c.Diagnostics())
	}
	c.records = append(c.records, r)
	return nil
}

// RemoveAt deletes the record at index, shifting later records down.
func (c *Catalog) RemoveAt(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.records = append(c.records[:index], c.records[index+1:]...)
	return nil
}

// Get returns the record at index.
func (c *Catalog) Get(index int) (*types.Record, error) {
	if err := c.checkIndex(index); err != nil {
		return nil, err
	}
	return c.records[index], nil
}

// Size returns the number of records.
func (c *Catalog) Size() int {
	return len(c.records)
}

// Records returns the records in catalog order. The slice is a copy; the
// records are shared.
func (c *Catalog) Records() []*types.Record {
	out := make([]*types.Record, len(c.records))
	copy(out, c.records)
	return out
}

// CountByKind returns the number of records of each kind, with every kind in
// types.Kinds present. A store that counts on its own is asked directly and
// reflects the last Load or Save; otherwise the in-memory records are tallied.
func (c *Catalog) CountByKind() (map[types.Kind]int, error) {
	counts := make(map[types.Kind]int, len(types.Kinds()))
	for _, k := range types.Kinds() {
		counts[k] = 0
	}

	if kc, ok := c.store.(kindCounter); ok {
		stored, err := kc.CountByKind()
		if err != nil {
			return nil, fmt.Errorf("count by kind: %w", err)
		}
		for k, n := range stored {
			counts[k] = n
		}
		return counts, nil
	}

	for _, r := range c.records {
		counts[r.Kind()]++
	}
	return counts, nil
}

// FindMatching returns, in catalog order, every record for which match
// returns true, paired with its index.
func (c *Catalog) FindMatching(match func(r *types.Record) bool) []Match {
	var found []Match
	for i, r := range c.records {
		if match(r) {
			found = append(found, Match{Index: i, Record: r})
		}
	}
	return found
}

func (c *Catalog) checkIndex(index int) error {
	if index < 0 || index >= len(c.records) {
		return fmt.Errorf("%w: index %d, size %d", types.ErrIndexOutOfRange, index, len(c.records))
	}
	return nil
}
