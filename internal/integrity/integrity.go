// Package integrity enforces the status-conditioned field invariants on shelf
// items. It repairs rather than rejects: any item passed in comes out
// satisfying the invariants, with conflicting optional fields reset to
// defaults.
package integrity

import "github.com/shelfspace/shelfspace-server/internal/domain"

// Enforce repairs item so that it satisfies the invariants:
//
//   - status PLANNED implies no rating
//   - status FINISHED implies a positive finishedCount
//   - any status other than FINISHED implies no finishedCount
//
// All three rules are applied; they are not mutually exclusive. Enforce never
// fails and is idempotent.
func Enforce(item *domain.ShelfItem) {
	if item.Status == domain.StatusPlanned && item.Rating != nil {
		item.Rating = nil
	}

	if item.Status == domain.StatusFinished && (item.FinishedCount == nil || *item.FinishedCount <= 0) {
		one := 1
		item.FinishedCount = &one
	}

	if item.Status != domain.StatusFinished {
		item.FinishedCount = nil
	}
}
