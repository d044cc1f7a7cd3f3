package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	"github.com/shelfspace/shelfspace-server/internal/service"
)

func (s *Server) registerItemRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "createItem",
		Method:        http.MethodPost,
		Path:          "/shelves/{shelfId}/items",
		Summary:       "Create item",
		Description:   "Adds a new item to the shelf",
		Tags:          []string{"Items"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateItem",
		Method:      http.MethodPut,
		Path:        "/shelves/{shelfId}/items/{itemId}",
		Summary:     "Update item",
		Description: "Overwrites the item's title, status, rating, and finished count",
		Tags:        []string{"Items"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteItem",
		Method:      http.MethodDelete,
		Path:        "/shelves/{shelfId}/items/{itemId}",
		Summary:     "Delete item",
		Description: "Removes the item from the shelf",
		Tags:        []string{"Items"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteItem)
}

// === DTOs ===

// ItemRequestBody is the client-writable item payload.
type ItemRequestBody struct {
	Title         string            `json:"title" doc:"Item title, up to 256 characters"`
	Status        domain.ItemStatus `json:"status" enum:"FINISHED,PLANNED,STALLED,DROPPED,IN_PROGRESS" doc:"Progress status"`
	Rating        *int              `json:"rating,omitempty" doc:"Rating from 1 to 10"`
	FinishedCount *int              `json:"finishedCount,omitempty" doc:"How many times the item was finished"`
}

// toRequest converts the body into a service request.
func (b ItemRequestBody) toRequest() service.ItemRequest {
	return service.ItemRequest{
		Title:         b.Title,
		Status:        b.Status,
		Rating:        b.Rating,
		FinishedCount: b.FinishedCount,
	}
}

// CreateItemInput wraps the create item request for Huma.
type CreateItemInput struct {
	ShelfID string `path:"shelfId" doc:"Shelf ID"`
	Body    ItemRequestBody
}

// ItemIDInput addresses an item on a shelf.
type ItemIDInput struct {
	ShelfID string `path:"shelfId" doc:"Shelf ID"`
	ItemID  string `path:"itemId" doc:"Item ID"`
}

// UpdateItemInput wraps the update item request for Huma.
type UpdateItemInput struct {
	ShelfID string `path:"shelfId" doc:"Shelf ID"`
	ItemID  string `path:"itemId" doc:"Item ID"`
	Body    ItemRequestBody
}

// ItemOutput wraps an item response for Huma.
type ItemOutput struct {
	Body domain.ShelfItem
}

// === Handlers ===

func (s *Server) handleCreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.services.Item.Create(ctx, userID, input.ShelfID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}

	return &ItemOutput{Body: *item}, nil
}

func (s *Server) handleUpdateItem(ctx context.Context, input *UpdateItemInput) (*ItemOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.services.Item.Update(ctx, userID, input.ShelfID, input.ItemID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}

	return &ItemOutput{Body: *item}, nil
}

func (s *Server) handleDeleteItem(ctx context.Context, input *ItemIDInput) (*ItemOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	removed, err := s.services.Item.Delete(ctx, userID, input.ShelfID, input.ItemID)
	if err != nil {
		return nil, err
	}

	return &ItemOutput{Body: *removed}, nil
}
