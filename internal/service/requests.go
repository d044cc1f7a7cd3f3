package service

import "github.com/shelfspace/shelfspace-server/internal/domain"

// ShelfRequest carries the client-writable shelf fields for create and update.
// Everything else on a Shelf (id, owner, items) is server-managed.
type ShelfRequest struct {
	ShelfName string           `json:"shelfName" validate:"required,min=3,max=64"`
	ShelfType domain.ShelfType `json:"shelfType" validate:"required,oneof=BOOK GAME MOVIE OTHER"`
}

// ItemRequest carries the client-writable item fields for create and update.
// Rating and FinishedCount are optional; invalid combinations with Status are
// repaired by the integrity rules, not rejected.
type ItemRequest struct {
	Title         string            `json:"title" validate:"required,max=256"`
	Status        domain.ItemStatus `json:"status" validate:"required,oneof=FINISHED PLANNED STALLED DROPPED IN_PROGRESS"`
	Rating        *int              `json:"rating" validate:"omitempty,gte=1,lte=10"`
	FinishedCount *int              `json:"finishedCount" validate:"omitempty,gte=0"`
}
