package domain

// UserProfile stores per-user metadata and the denormalized summaries of the
// user's shelves. Created lazily on first access; the nickname is fetched from
// the identity provider at that point and cached here.
//
// The summary list and the shelf records form a dual-write pair: the set of
// ShelfID values here must equal the set of Shelf records whose OwnerID is
// this user. Only the shelf service may write to either side.
type UserProfile struct {
	UserID   string         `json:"userId"`
	Nickname string         `json:"nickname"`
	Shelves  []ShelfSummary `json:"shelves"`
}

// ShelfSummary is the lightweight shelf metadata cached inside a profile.
// Unlike a full Shelf record it carries no items.
type ShelfSummary struct {
	ShelfID   string    `json:"shelfId"`
	ShelfName string    `json:"shelfName"`
	ShelfType ShelfType `json:"shelfType"`
}

// FindShelf returns the index of the summary with the given shelf id, or -1.
func (p *UserProfile) FindShelf(shelfID string) int {
	for i := range p.Shelves {
		if p.Shelves[i].ShelfID == shelfID {
			return i
		}
	}
	return -1
}

// RemoveShelf deletes the summary with the given shelf id from the profile.
// Returns the removed summary and true, or a zero summary and false if the id
// was not present.
func (p *UserProfile) RemoveShelf(shelfID string) (ShelfSummary, bool) {
	i := p.FindShelf(shelfID)
	if i < 0 {
		return ShelfSummary{}, false
	}
	removed := p.Shelves[i]
	p.Shelves = append(p.Shelves[:i], p.Shelves[i+1:]...)
	return removed, true
}
