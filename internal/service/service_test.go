package service

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/store"
	"github.com/shelfspace/shelfspace-server/internal/validation"
)

// testEnv bundles the services under test with their backing store and
// identity provider.
type testEnv struct {
	store    *store.Store
	identity *identity.StaticProvider
	profiles *ProfileService
	shelves  *ShelfService
	items    *ItemService
}

// setupTest creates the full service stack on a temporary store, seeded with
// the given identity provider accounts.
func setupTest(t *testing.T, users ...identity.UserInfo) *testEnv {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	logger := slog.New(slog.DiscardHandler)
	provider := identity.NewStaticProvider(users...)
	validator := validation.New()

	profiles := NewProfileService(s, provider, logger)
	shelves := NewShelfService(s, profiles, validator, logger)
	items := NewItemService(s, shelves, validator, logger)

	return &testEnv{
		store:    s,
		identity: provider,
		profiles: profiles,
		shelves:  shelves,
		items:    items,
	}
}

func intPtr(v int) *int {
	return &v
}
