package domain

import "time"

// ShelfType categorizes what kind of media a shelf holds.
type ShelfType string

// Shelf types.
const (
	ShelfTypeBook  ShelfType = "BOOK"
	ShelfTypeGame  ShelfType = "GAME"
	ShelfTypeMovie ShelfType = "MOVIE"
	ShelfTypeOther ShelfType = "OTHER"
)

// IsValid reports whether t is one of the known shelf types.
func (t ShelfType) IsValid() bool {
	switch t {
	case ShelfTypeBook, ShelfTypeGame, ShelfTypeMovie, ShelfTypeOther:
		return true
	}
	return false
}

// ItemStatus tracks a user's progress on a single shelf item.
type ItemStatus string

// Item statuses.
const (
	StatusFinished   ItemStatus = "FINISHED"
	StatusPlanned    ItemStatus = "PLANNED"
	StatusStalled    ItemStatus = "STALLED"
	StatusDropped    ItemStatus = "DROPPED"
	StatusInProgress ItemStatus = "IN_PROGRESS"
)

// IsValid reports whether s is one of the known item statuses.
func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusFinished, StatusPlanned, StatusStalled, StatusDropped, StatusInProgress:
		return true
	}
	return false
}

// Shelf is the full per-shelf record, stored independently from the owner's
// profile. OwnerID is set at creation and never changes; it is the basis for
// every authorization decision on the shelf and its items.
type Shelf struct {
	ShelfID   string      `json:"shelfId"`
	ShelfName string      `json:"shelfName"`
	OwnerID   string      `json:"ownerId"`
	ShelfType ShelfType   `json:"shelfType"`
	Items     []ShelfItem `json:"items"`
}

// Summary returns the denormalized view of the shelf cached in the owner's
// profile. It omits the item list.
func (s *Shelf) Summary() ShelfSummary {
	return ShelfSummary{
		ShelfID:   s.ShelfID,
		ShelfName: s.ShelfName,
		ShelfType: s.ShelfType,
	}
}

// FindItem returns the index of the item with the given id, or -1.
func (s *Shelf) FindItem(itemID string) int {
	for i := range s.Items {
		if s.Items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// ShelfItem is a single entry on a shelf. ItemID and CreationDate are set
// server-side at creation and are immutable afterwards. Rating and
// FinishedCount are optional and only meaningful under certain statuses; see
// integrity.Enforce for the repair rules.
type ShelfItem struct {
	ItemID        string     `json:"itemId"`
	Title         string     `json:"title"`
	CreationDate  time.Time  `json:"creationDate"`
	Status        ItemStatus `json:"status"`
	Rating        *int       `json:"rating"`
	FinishedCount *int       `json:"finishedCount"`
}
