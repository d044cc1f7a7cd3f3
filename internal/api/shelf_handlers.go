package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	"github.com/shelfspace/shelfspace-server/internal/service"
)

func (s *Server) registerShelfRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listShelves",
		Method:      http.MethodGet,
		Path:        "/shelves",
		Summary:     "List shelves",
		Description: "Returns summaries of all shelves owned by the caller",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListShelves)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createShelf",
		Method:        http.MethodPost,
		Path:          "/shelves",
		Summary:       "Create shelf",
		Description:   "Creates a new shelf for the caller and returns its summary",
		Tags:          []string{"Shelves"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "getShelf",
		Method:      http.MethodGet,
		Path:        "/shelves/{shelfId}",
		Summary:     "Get shelf",
		Description: "Returns the full shelf with its items",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateShelf",
		Method:      http.MethodPut,
		Path:        "/shelves/{shelfId}",
		Summary:     "Update shelf",
		Description: "Updates the shelf's name and type",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteShelf",
		Method:      http.MethodDelete,
		Path:        "/shelves/{shelfId}",
		Summary:     "Delete shelf",
		Description: "Deletes the shelf and all its items",
		Tags:        []string{"Shelves"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteShelf)
}

// === DTOs ===

// ShelfRequestBody is the client-writable shelf payload.
type ShelfRequestBody struct {
	ShelfName string           `json:"shelfName" doc:"Display name, 3-64 characters"`
	ShelfType domain.ShelfType `json:"shelfType" enum:"BOOK,GAME,MOVIE,OTHER" doc:"Kind of media on the shelf"`
}

// toRequest converts the body into a service request.
func (b ShelfRequestBody) toRequest() service.ShelfRequest {
	return service.ShelfRequest{
		ShelfName: b.ShelfName,
		ShelfType: b.ShelfType,
	}
}

// ListShelvesOutput wraps the summary list for Huma.
type ListShelvesOutput struct {
	Body []domain.ShelfSummary
}

// CreateShelfInput wraps the create shelf request for Huma.
type CreateShelfInput struct {
	Body ShelfRequestBody
}

// ShelfOutput wraps a full shelf response for Huma.
type ShelfOutput struct {
	Body domain.Shelf
}

// ShelfIDInput addresses a shelf by ID.
type ShelfIDInput struct {
	ShelfID string `path:"shelfId" doc:"Shelf ID"`
}

// UpdateShelfInput wraps the update shelf request for Huma.
type UpdateShelfInput struct {
	ShelfID string `path:"shelfId" doc:"Shelf ID"`
	Body    ShelfRequestBody
}

// ShelfSummaryOutput wraps a shelf summary response for Huma.
type ShelfSummaryOutput struct {
	Body domain.ShelfSummary
}

// === Handlers ===

func (s *Server) handleListShelves(ctx context.Context, _ *struct{}) (*ListShelvesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := s.services.Shelf.ListSummaries(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListShelvesOutput{Body: summaries}, nil
}

func (s *Server) handleCreateShelf(ctx context.Context, input *CreateShelfInput) (*ShelfSummaryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.services.Shelf.Create(ctx, userID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}

	return &ShelfSummaryOutput{Body: *summary}, nil
}

func (s *Server) handleGetShelf(ctx context.Context, input *ShelfIDInput) (*ShelfOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelf, err := s.services.Shelf.Get(ctx, userID, input.ShelfID)
	if err != nil {
		return nil, err
	}

	return &ShelfOutput{Body: *shelf}, nil
}

func (s *Server) handleUpdateShelf(ctx context.Context, input *UpdateShelfInput) (*ShelfOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	shelf, err := s.services.Shelf.Update(ctx, userID, input.ShelfID, input.Body.toRequest())
	if err != nil {
		return nil, err
	}

	return &ShelfOutput{Body: *shelf}, nil
}

func (s *Server) handleDeleteShelf(ctx context.Context, input *ShelfIDInput) (*ShelfSummaryOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	removed, err := s.services.Shelf.Delete(ctx, userID, input.ShelfID)
	if err != nil {
		return nil, err
	}

	return &ShelfSummaryOutput{Body: *removed}, nil
}
