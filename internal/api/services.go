package api

import "github.com/shelfspace/shelfspace-server/internal/service"

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Profile *service.ProfileService
	Shelf   *service.ShelfService
	Item    *service.ItemService
}
