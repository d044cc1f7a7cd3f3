package store

import (
	"context"

	"github.com/shelfspace/shelfspace-server/internal/domain"
)

// GetShelf retrieves a full shelf record by shelf ID.
// Returns ErrNotFound if the shelf does not exist. Ownership is not checked
// here; that is the shelf service's concern.
func (s *Store) GetShelf(ctx context.Context, shelfID string) (*domain.Shelf, error) {
	return s.Shelves.Get(ctx, shelfID)
}

// PutShelf writes the shelf record, creating or overwriting it.
func (s *Store) PutShelf(ctx context.Context, shelf *domain.Shelf) error {
	return s.Shelves.Put(ctx, shelf.ShelfID, shelf)
}

// DeleteShelf removes the shelf record. Idempotent.
func (s *Store) DeleteShelf(ctx context.Context, shelfID string) error {
	return s.Shelves.Delete(ctx, shelfID)
}
