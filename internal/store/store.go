// Package store persists profiles and shelves in an embedded Badger key-value
// store. Records are JSON documents addressed by a single primary key; there
// are no cross-record transactions. Keeping the profile summary list and the
// shelf records coherent is the job of the shelf service, not this package.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/shelfspace/shelfspace-server/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Entity tables
	Profiles *Entity[domain.UserProfile]
	Shelves  *Entity[domain.Shelf]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.Profiles = NewEntity[domain.UserProfile](store, "profile:")
	store.Shelves = NewEntity[domain.Shelf](store, "shelf:")

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}
