package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/id"
	"github.com/shelfspace/shelfspace-server/internal/integrity"
	"github.com/shelfspace/shelfspace-server/internal/store"
	"github.com/shelfspace/shelfspace-server/internal/validation"
)

// ItemService manages the items on a shelf. All item access goes through the
// owning shelf, so ownership checks are inherited from ShelfService.Get.
type ItemService struct {
	store     *store.Store
	shelves   *ShelfService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewItemService creates a new item service.
func NewItemService(store *store.Store, shelves *ShelfService, validator *validation.Validator, logger *slog.Logger) *ItemService {
	return &ItemService{
		store:     store,
		shelves:   shelves,
		validator: validator,
		logger:    logger,
	}
}

// Create adds a new item to the shelf. The item id and creation date are
// assigned here and never change afterwards.
func (s *ItemService) Create(ctx context.Context, userID, shelfID string, req ItemRequest) (*domain.ShelfItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	shelf, err := s.shelves.Get(ctx, userID, shelfID)
	if err != nil {
		return nil, err
	}

	if len(shelf.Items) >= domain.MaxItemsPerShelf {
		return nil, domainerrors.QuotaExceeded(
			fmt.Sprintf("item quota of %d exceeded for shelf %s", domain.MaxItemsPerShelf, shelfID))
	}

	itemID, err := id.Generate("item")
	if err != nil {
		return nil, fmt.Errorf("generate item ID: %w", err)
	}

	item := domain.ShelfItem{
		ItemID:        itemID,
		Title:         req.Title,
		CreationDate:  time.Now().UTC(),
		Status:        req.Status,
		Rating:        req.Rating,
		FinishedCount: req.FinishedCount,
	}
	integrity.Enforce(&item)

	shelf.Items = append(shelf.Items, item)
	if err := s.store.PutShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("save shelf: %w", err)
	}

	s.logger.Info("item created",
		"item_id", itemID,
		"shelf_id", shelfID,
		"owner_id", userID,
		"status", item.Status,
	)

	return &item, nil
}

// Update overwrites the item's title, status, rating, and finished count.
// The item id and creation date are preserved regardless of the request.
func (s *ItemService) Update(ctx context.Context, userID, shelfID, itemID string, req ItemRequest) (*domain.ShelfItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	shelf, err := s.shelves.Get(ctx, userID, shelfID)
	if err != nil {
		return nil, err
	}

	i := shelf.FindItem(itemID)
	if i < 0 {
		return nil, domainerrors.NotFoundf("item %s was not found on shelf %s", itemID, shelfID)
	}

	item := &shelf.Items[i]
	item.Title = req.Title
	item.Status = req.Status
	item.Rating = req.Rating
	item.FinishedCount = req.FinishedCount
	integrity.Enforce(item)

	if err := s.store.PutShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("save shelf: %w", err)
	}

	s.logger.Info("item updated",
		"item_id", itemID,
		"shelf_id", shelfID,
		"owner_id", userID,
		"status", item.Status,
	)

	updated := *item
	return &updated, nil
}

// Delete removes the item from the shelf. Returns the removed item.
func (s *ItemService) Delete(ctx context.Context, userID, shelfID, itemID string) (*domain.ShelfItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shelf, err := s.shelves.Get(ctx, userID, shelfID)
	if err != nil {
		return nil, err
	}

	i := shelf.FindItem(itemID)
	if i < 0 {
		return nil, domainerrors.NotFoundf("item %s was not found on shelf %s", itemID, shelfID)
	}

	removed := shelf.Items[i]
	shelf.Items = append(shelf.Items[:i], shelf.Items[i+1:]...)

	if err := s.store.PutShelf(ctx, shelf); err != nil {
		return nil, fmt.Errorf("save shelf: %w", err)
	}

	s.logger.Info("item deleted",
		"item_id", itemID,
		"shelf_id", shelfID,
		"owner_id", userID,
	)

	return &removed, nil
}
