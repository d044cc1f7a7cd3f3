package domain

// Hard caps on collection sizes. Exceeding either is a quota error, never a
// silent truncation.
const (
	// MaxShelvesPerUser caps how many shelves a single account may own.
	MaxShelvesPerUser = 20

	// MaxItemsPerShelf caps how many items fit on a single shelf.
	MaxItemsPerShelf = 2000
)
