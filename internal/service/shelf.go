package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/id"
	"github.com/shelfspace/shelfspace-server/internal/store"
	"github.com/shelfspace/shelfspace-server/internal/validation"
)

// ShelfService orchestrates shelf operations with ownership enforcement.
//
// Every shelf exists in two places: as a full Shelf record and as a summary in
// the owner's profile. This service is the sole writer of both, and always
// writes them as an ordered pair. There is no cross-record transaction in the
// store, so a crash between the two writes can leave them inconsistent; the
// write order is chosen so the profile never references a shelf that was
// already removed.
type ShelfService struct {
	store     *store.Store
	profiles  *ProfileService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewShelfService creates a new shelf service.
func NewShelfService(store *store.Store, profiles *ProfileService, validator *validation.Validator, logger *slog.Logger) *ShelfService {
	return &ShelfService{
		store:     store,
		profiles:  profiles,
		validator: validator,
		logger:    logger,
	}
}

// Create creates a new shelf for the user and registers it in the profile.
// Returns the new shelf's summary; the full record starts with no items.
func (s *ShelfService) Create(ctx context.Context, userID string, req ShelfRequest) (*domain.ShelfSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(profile.Shelves) >= domain.MaxShelvesPerUser {
		return nil, domainerrors.QuotaExceeded(
			fmt.Sprintf("shelf quota of %d exceeded", domain.MaxShelvesPerUser))
	}

	shelfID, err := id.Generate("shelf")
	if err != nil {
		return nil, fmt.Errorf("generate shelf ID: %w", err)
	}

	shelf := &domain.Shelf{
		ShelfID:   shelfID,
		ShelfName: req.ShelfName,
		OwnerID:   userID,
		ShelfType: req.ShelfType,
		Items:     []domain.ShelfItem{},
	}

	// Profile first: a summary pointing at a shelf record that is still being
	// written is repairable; an orphaned shelf record is invisible forever.
	profile.Shelves = append(profile.Shelves, shelf.Summary())
	if err := s.store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("register shelf in profile: %w", err)
	}

	if err := s.store.PutShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("create shelf: %w", err)
	}

	s.logger.Info("shelf created",
		"shelf_id", shelfID,
		"owner_id", userID,
		"shelf_type", shelf.ShelfType,
	)

	summary := shelf.Summary()
	return &summary, nil
}

// Get retrieves a shelf by ID, enforcing ownership. A shelf owned by someone
// else yields the same NOT_FOUND as a missing one, so callers cannot probe for
// the existence of other users' shelves.
func (s *ShelfService) Get(ctx context.Context, userID, shelfID string) (*domain.Shelf, error) {
	shelf, err := s.store.GetShelf(ctx, shelfID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("shelf %s was not found", shelfID)
		}
		return nil, fmt.Errorf("get shelf: %w", err)
	}

	if shelf.OwnerID != userID {
		return nil, domainerrors.NotFoundf("shelf %s was not found", shelfID)
	}

	return shelf, nil
}

// Update changes the shelf's name and type. Items and ownership are untouched.
func (s *ShelfService) Update(ctx context.Context, userID, shelfID string, req ShelfRequest) (*domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	shelf, err := s.Get(ctx, userID, shelfID)
	if err != nil {
		return nil, err
	}

	shelf.ShelfName = req.ShelfName
	shelf.ShelfType = req.ShelfType

	// Shelf record first, then the cached summary.
	if err := s.store.PutShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("update shelf: %w", err)
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.RemoveShelf(shelfID)
	profile.Shelves = append(profile.Shelves, shelf.Summary())
	if err := s.store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("update shelf summary: %w", err)
	}

	s.logger.Info("shelf updated",
		"shelf_id", shelfID,
		"owner_id", userID,
	)

	return shelf, nil
}

// Delete removes the shelf record and its summary. Returns the removed
// summary.
func (s *ShelfService) Delete(ctx context.Context, userID, shelfID string) (*domain.ShelfSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shelf, err := s.Get(ctx, userID, shelfID)
	if err != nil {
		return nil, err
	}

	// Shelf record first, so a crash leaves at worst a dangling summary.
	if err := s.store.DeleteShelf(ctx, shelfID); err != nil {
		return nil, fmt.Errorf("delete shelf: %w", err)
	}

	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.RemoveShelf(shelfID)
	if err := s.store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("unregister shelf from profile: %w", err)
	}

	s.logger.Info("shelf deleted",
		"shelf_id", shelfID,
		"owner_id", userID,
	)

	summary := shelf.Summary()
	return &summary, nil
}

// ListSummaries returns the caller's shelf summaries from the profile.
func (s *ShelfService) ListSummaries(ctx context.Context, userID string) ([]domain.ShelfSummary, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Shelves, nil
}
