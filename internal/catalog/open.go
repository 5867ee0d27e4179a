package catalog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/contacts/internal/jsonfile"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Open validates cfg, creates the store it selects and loads the catalog.
// An empty cfg.DataFile yields a catalog without a persistence target.
// The caller must Close the returned catalog.
func Open(cfg types.Config, opts ...Option) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := New(nil, opts...)
	if cfg.DataFile != "" {
		switch cfg.Backend {
		case types.BackendJSON:
			c.store = jsonfile.New(cfg.DataFile, c.log)
		case types.BackendSQLite:
			s, err := sqlite.Open(cfg.DataFile, c.log)
			if err != nil {
				return nil, fmt.Errorf("open sqlite store: %w", err)
			}
			c.store = s
		}
	}

	if err := loadOrClose(c); err != nil {
		return nil, err
	}
	return c, nil
}

// loadOrClose loads c and closes it when the load fails. A close failure is
// joined to the load error.
func loadOrClose(c *Catalog) error {
	if err := c.Load(); err != nil {
		return errors.Join(err, c.Close())
	}
	return nil
}
