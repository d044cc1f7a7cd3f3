package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/identity"
)

func setupShelfTest(t *testing.T) *testEnv {
	t.Helper()
	return setupTest(t,
		identity.UserInfo{UserID: "user-1", Nickname: "dana"},
		identity.UserInfo{UserID: "user-2", Nickname: "kim"},
	)
}

func TestShelfCreate(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	summary, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	// Create answers with the summary only.
	assert.True(t, strings.HasPrefix(summary.ShelfID, "shelf-"))
	assert.Equal(t, "Backlog", summary.ShelfName)
	assert.Equal(t, domain.ShelfTypeGame, summary.ShelfType)

	// Both representations exist and agree; the full record carries the
	// owner and an empty item list.
	stored, err := env.store.GetShelf(ctx, summary.ShelfID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.OwnerID)
	assert.Empty(t, stored.Items)
	assert.Equal(t, *summary, stored.Summary())

	profile, err := env.store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, profile.Shelves, 1)
	assert.Equal(t, *summary, profile.Shelves[0])
}

func TestShelfCreate_Validation(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  ShelfRequest
	}{
		{"empty name", ShelfRequest{ShelfName: "", ShelfType: domain.ShelfTypeBook}},
		{"name too short", ShelfRequest{ShelfName: "ab", ShelfType: domain.ShelfTypeBook}},
		{"name too long", ShelfRequest{ShelfName: strings.Repeat("x", 65), ShelfType: domain.ShelfTypeBook}},
		{"missing type", ShelfRequest{ShelfName: "Backlog"}},
		{"unknown type", ShelfRequest{ShelfName: "Backlog", ShelfType: "VINYL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.shelves.Create(ctx, "user-1", tt.req)
			assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidData), "got %v", err)
		})
	}

	// Nothing was persisted.
	profile, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, profile.Shelves)
}

func TestShelfCreate_Quota(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	for i := range domain.MaxShelvesPerUser {
		_, err := env.shelves.Create(ctx, "user-1", ShelfRequest{
			ShelfName: fmt.Sprintf("Shelf %02d", i),
			ShelfType: domain.ShelfTypeBook,
		})
		require.NoError(t, err)
	}

	_, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "One too many", ShelfType: domain.ShelfTypeBook})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrQuotaExceeded))

	// The quota is per user, not global.
	_, err = env.shelves.Create(ctx, "user-2", ShelfRequest{ShelfName: "Fresh start", ShelfType: domain.ShelfTypeBook})
	assert.NoError(t, err)

	// Deleting a shelf frees quota again.
	summaries, err := env.shelves.ListSummaries(ctx, "user-1")
	require.NoError(t, err)
	_, err = env.shelves.Delete(ctx, "user-1", summaries[0].ShelfID)
	require.NoError(t, err)

	_, err = env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Fits again", ShelfType: domain.ShelfTypeBook})
	assert.NoError(t, err)
}

func TestShelfGet_OwnershipHidesExistence(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	_, errMissing := env.shelves.Get(ctx, "user-2", "shelf-does-not-exist")
	_, errForeign := env.shelves.Get(ctx, "user-2", shelf.ShelfID)

	// A foreign shelf is indistinguishable from a missing one.
	require.Error(t, errMissing)
	require.Error(t, errForeign)
	assert.True(t, domainerrors.Is(errForeign, domainerrors.ErrNotFound))

	var de *domainerrors.Error
	require.True(t, domainerrors.As(errForeign, &de))
	assert.Equal(t, domainerrors.CodeNotFound, de.Code)
}

func TestShelfUpdate(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)
	_, err = env.items.Create(ctx, "user-1", shelf.ShelfID, ItemRequest{Title: "Outer Wilds", Status: domain.StatusInProgress})
	require.NoError(t, err)

	updated, err := env.shelves.Update(ctx, "user-1", shelf.ShelfID, ShelfRequest{ShelfName: "Now Playing", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)
	assert.Equal(t, shelf.ShelfID, updated.ShelfID)
	assert.Equal(t, "Now Playing", updated.ShelfName)
	assert.Len(t, updated.Items, 1, "items survive a metadata update")

	// Summary follows the rename.
	summaries, err := env.shelves.ListSummaries(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Now Playing", summaries[0].ShelfName)
	assert.Equal(t, shelf.ShelfID, summaries[0].ShelfID)
}

func TestShelfUpdate_ForeignShelf(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	_, err = env.shelves.Update(ctx, "user-2", shelf.ShelfID, ShelfRequest{ShelfName: "Hijacked", ShelfType: domain.ShelfTypeGame})
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))

	// Unchanged.
	current, err := env.shelves.Get(ctx, "user-1", shelf.ShelfID)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", current.ShelfName)
}

func TestShelfDelete(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	removed, err := env.shelves.Delete(ctx, "user-1", shelf.ShelfID)
	require.NoError(t, err)
	assert.Equal(t, shelf.ShelfID, removed.ShelfID)

	_, err = env.shelves.Get(ctx, "user-1", shelf.ShelfID)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))

	summaries, err := env.shelves.ListSummaries(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	// Deleting again is NOT_FOUND, not an internal error.
	_, err = env.shelves.Delete(ctx, "user-1", shelf.ShelfID)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestShelfListSummaries_LazyCreatesProfile(t *testing.T) {
	env := setupShelfTest(t)

	summaries, err := env.shelves.ListSummaries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Equal(t, 1, env.identity.Lookups())
}

func TestShelfDualWrite_StaysConsistent(t *testing.T) {
	env := setupShelfTest(t)
	ctx := context.Background()

	var ids []string
	for i := range 5 {
		shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{
			ShelfName: fmt.Sprintf("Shelf %d", i),
			ShelfType: domain.ShelfTypeOther,
		})
		require.NoError(t, err)
		ids = append(ids, shelf.ShelfID)
	}

	_, err := env.shelves.Delete(ctx, "user-1", ids[2])
	require.NoError(t, err)
	_, err = env.shelves.Update(ctx, "user-1", ids[4], ShelfRequest{ShelfName: "Renamed", ShelfType: domain.ShelfTypeMovie})
	require.NoError(t, err)

	// Every summary resolves to a shelf record with matching metadata, and
	// every remaining record is summarized.
	profile, err := env.store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, profile.Shelves, 4)

	for _, summary := range profile.Shelves {
		shelf, err := env.store.GetShelf(ctx, summary.ShelfID)
		require.NoError(t, err)
		assert.Equal(t, shelf.Summary(), summary)
		assert.Equal(t, "user-1", shelf.OwnerID)
	}

	_, err = env.store.GetShelf(ctx, ids[2])
	assert.Error(t, err)
}
