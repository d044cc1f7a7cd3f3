package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/store"
)

func TestProfileGetOrCreate_LazyCreation(t *testing.T) {
	env := setupTest(t, identity.UserInfo{UserID: "user-1", Nickname: "dana"})
	ctx := context.Background()

	profile, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "dana", profile.Nickname)
	assert.Empty(t, profile.Shelves)
	assert.Equal(t, 1, env.identity.Lookups())

	// Second call hits the stored profile, not the identity provider.
	again, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, again.UserID)
	assert.Equal(t, 1, env.identity.Lookups())

	// And it performs no write: an out-of-band store edit survives further
	// calls instead of being overwritten with the creation payload.
	profile.Nickname = "edited-out-of-band"
	require.NoError(t, env.store.PutProfile(ctx, profile))

	third, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "edited-out-of-band", third.Nickname)

	stored, err := env.store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "edited-out-of-band", stored.Nickname)
	assert.Equal(t, 1, env.identity.Lookups())
}

func TestProfileGetOrCreate_UnknownUser(t *testing.T) {
	env := setupTest(t)

	_, err := env.profiles.GetOrCreate(context.Background(), "ghost")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileGetOrCreate_NicknameCachedAtCreation(t *testing.T) {
	env := setupTest(t, identity.UserInfo{UserID: "user-1", Nickname: "dana"})
	ctx := context.Background()

	_, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)

	// A nickname change at the provider is not reflected in the cached profile.
	env.identity.AddUser(identity.UserInfo{UserID: "user-1", Nickname: "dana-renamed"})

	profile, err := env.profiles.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "dana", profile.Nickname)
}

func TestProfileDelete_Cascades(t *testing.T) {
	env := setupTest(t, identity.UserInfo{UserID: "user-1", Nickname: "dana"})
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)
	other, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Watched", ShelfType: domain.ShelfTypeMovie})
	require.NoError(t, err)

	snapshot, err := env.profiles.Delete(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, snapshot.Shelves, 2)
	assert.Equal(t, 1, env.identity.Deletions())

	// Profile and both shelf records are gone.
	_, err = env.store.GetProfile(ctx, "user-1")
	assert.Error(t, err)
	_, err = env.store.GetShelf(ctx, shelf.ShelfID)
	assert.Error(t, err)
	_, err = env.store.GetShelf(ctx, other.ShelfID)
	assert.Error(t, err)
}

// failingDeleteProvider delegates lookups but fails every account deletion.
type failingDeleteProvider struct {
	identity.Provider
}

func (p failingDeleteProvider) DeleteUser(context.Context, string) error {
	return errors.New("identity provider unavailable")
}

func TestProfileDelete_IdentityFailureSurfaces(t *testing.T) {
	env := setupTest(t, identity.UserInfo{UserID: "user-1", Nickname: "dana"})
	ctx := context.Background()

	shelf, err := env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	profiles := NewProfileService(env.store, failingDeleteProvider{env.identity}, logger)

	_, err = profiles.Delete(ctx, "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identity provider")

	// The local deletes already applied stand; there is no rollback.
	_, err = env.store.GetProfile(ctx, "user-1")
	assert.True(t, domainerrors.Is(err, store.ErrNotFound))
	_, err = env.store.GetShelf(ctx, shelf.ShelfID)
	assert.True(t, domainerrors.Is(err, store.ErrNotFound))
}

func TestProfileDelete_UnknownUser(t *testing.T) {
	env := setupTest(t)

	_, err := env.profiles.Delete(context.Background(), "ghost")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileDelete_DoesNotTouchOtherUsers(t *testing.T) {
	env := setupTest(t,
		identity.UserInfo{UserID: "user-1", Nickname: "dana"},
		identity.UserInfo{UserID: "user-2", Nickname: "kim"},
	)
	ctx := context.Background()

	kept, err := env.shelves.Create(ctx, "user-2", ShelfRequest{ShelfName: "Reading", ShelfType: domain.ShelfTypeBook})
	require.NoError(t, err)
	_, err = env.shelves.Create(ctx, "user-1", ShelfRequest{ShelfName: "Backlog", ShelfType: domain.ShelfTypeGame})
	require.NoError(t, err)

	_, err = env.profiles.Delete(ctx, "user-1")
	require.NoError(t, err)

	survivor, err := env.shelves.Get(ctx, "user-2", kept.ShelfID)
	require.NoError(t, err)
	assert.Equal(t, "Reading", survivor.ShelfName)
}
