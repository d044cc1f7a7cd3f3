// Package service implements the application's business operations on top of
// the store. The shelf and item services are the only writers of shelf records
// and profile summary lists, which keeps the two representations in sync.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/store"
)

// ProfileService manages user profiles and their lifecycle.
type ProfileService struct {
	store    *store.Store
	identity identity.Provider
	logger   *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store, identity identity.Provider, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		store:    store,
		identity: identity,
		logger:   logger,
	}
}

// GetOrCreate returns the user's profile, creating it on first access.
// The nickname is fetched from the identity provider once, at creation time.
// Repeated calls for an existing profile make no identity lookup and no write.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !domainerrors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	info, err := s.identity.GetUserInfo(ctx, userID)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFoundf("user %s was not found", userID)
		}
		return nil, fmt.Errorf("identity lookup: %w", err)
	}

	profile = &domain.UserProfile{
		UserID:   userID,
		Nickname: info.Nickname,
		Shelves:  []domain.ShelfSummary{},
	}

	if err := s.store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("profile created",
		"user_id", userID,
		"nickname", info.Nickname,
	)

	return profile, nil
}

// Delete removes the user's profile, every shelf it references, and the
// account at the identity provider. Shelf deletion is best-effort so that one
// stale summary cannot block account removal; an identity provider failure
// surfaces to the caller, with the local deletes already applied (no
// rollback). Returns the pre-deletion profile snapshot.
func (s *ProfileService) Delete(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, summary := range profile.Shelves {
		if err := s.store.DeleteShelf(ctx, summary.ShelfID); err != nil {
			s.logger.Warn("failed to delete shelf during account removal",
				"user_id", userID,
				"shelf_id", summary.ShelfID,
				"error", err,
			)
		}
	}

	if err := s.store.DeleteProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("delete profile: %w", err)
	}

	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("delete identity provider account: %w", err)
	}

	s.logger.Info("user deleted",
		"user_id", userID,
		"shelves_removed", len(profile.Shelves),
	)

	return profile, nil
}
