package store

import (
	"context"

	"github.com/shelfspace/shelfspace-server/internal/domain"
)

// GetProfile retrieves a user profile by user ID.
// Returns ErrNotFound if no profile exists for the user.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.Profiles.Get(ctx, userID)
}

// PutProfile writes the profile record, creating or overwriting it.
func (s *Store) PutProfile(ctx context.Context, profile *domain.UserProfile) error {
	return s.Profiles.Put(ctx, profile.UserID, profile)
}

// DeleteProfile removes the profile record. Idempotent.
func (s *Store) DeleteProfile(ctx context.Context, userID string) error {
	return s.Profiles.Delete(ctx, userID)
}
