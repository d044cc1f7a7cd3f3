package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/identity"
)

func setupShelfServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServer(t,
		identity.UserInfo{UserID: "user-1", Nickname: "dana"},
		identity.UserInfo{UserID: "user-2", Nickname: "kim"},
	)
}

func (ts *testServer) createShelf(t *testing.T, authz, name, shelfType string) domain.ShelfSummary {
	t.Helper()
	resp := ts.api.Post("/shelves", authz, map[string]any{
		"shelfName": name,
		"shelfType": shelfType,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var summary domain.ShelfSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summary))
	return summary
}

func TestCreateShelf(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	resp := ts.api.Post("/shelves", authz, map[string]any{
		"shelfName": "Backlog",
		"shelfType": "GAME",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var summary domain.ShelfSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summary))
	assert.NotEmpty(t, summary.ShelfID)
	assert.Equal(t, "Backlog", summary.ShelfName)
	assert.Equal(t, domain.ShelfTypeGame, summary.ShelfType)

	// The 201 body is the summary, not the full record.
	assert.NotContains(t, resp.Body.String(), `"items"`)
	assert.NotContains(t, resp.Body.String(), `"ownerId"`)

	// The full record is reachable right away.
	full := ts.api.Get("/shelves/"+summary.ShelfID, authz)
	require.Equal(t, http.StatusOK, full.Code)

	var shelf domain.Shelf
	require.NoError(t, json.Unmarshal(full.Body.Bytes(), &shelf))
	assert.Equal(t, "user-1", shelf.OwnerID)
	assert.Empty(t, shelf.Items)
}

func TestCreateShelf_InvalidBody(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"name too short", map[string]any{"shelfName": "ab", "shelfType": "GAME"}},
		{"unknown type", map[string]any{"shelfName": "Backlog", "shelfType": "VINYL"}},
		{"missing fields", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Post("/shelves", authz, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
			assert.Equal(t, string(domainerrors.CodeInvalidData), decodeError(t, resp).Error)
		})
	}
}

func TestListShelves(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	empty := ts.api.Get("/shelves", authz)
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, "[]", empty.Body.String())

	ts.createShelf(t, authz, "Backlog", "GAME")
	ts.createShelf(t, authz, "Watched", "MOVIE")

	resp := ts.api.Get("/shelves", authz)
	require.Equal(t, http.StatusOK, resp.Code)

	var summaries []domain.ShelfSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)

	// Summaries never include items.
	assert.NotContains(t, resp.Body.String(), "items")

	// The other user's listing is independent.
	other := ts.api.Get("/shelves", ts.bearer(t, "user-2"))
	require.Equal(t, http.StatusOK, other.Code)
	assert.JSONEq(t, "[]", other.Body.String())
}

func TestGetShelf(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	shelf := ts.createShelf(t, authz, "Backlog", "GAME")

	resp := ts.api.Get("/shelves/"+shelf.ShelfID, authz)
	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Shelf
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, shelf.ShelfID, got.ShelfID)
	assert.NotNil(t, got.Items)
}

func TestGetShelf_ForeignLooksMissing(t *testing.T) {
	ts := setupShelfServer(t)

	shelf := ts.createShelf(t, ts.bearer(t, "user-1"), "Backlog", "GAME")

	foreign := ts.api.Get("/shelves/"+shelf.ShelfID, ts.bearer(t, "user-2"))
	missing := ts.api.Get("/shelves/shelf-does-not-exist", ts.bearer(t, "user-2"))

	// Identical status and code either way.
	require.Equal(t, http.StatusNotFound, foreign.Code)
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, string(domainerrors.CodeNotFound), decodeError(t, foreign).Error)
	assert.Equal(t, string(domainerrors.CodeNotFound), decodeError(t, missing).Error)
}

func TestUpdateShelf(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	shelf := ts.createShelf(t, authz, "Backlog", "GAME")

	resp := ts.api.Put("/shelves/"+shelf.ShelfID, authz, map[string]any{
		"shelfName": "Now Playing",
		"shelfType": "GAME",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated domain.Shelf
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, shelf.ShelfID, updated.ShelfID)
	assert.Equal(t, "Now Playing", updated.ShelfName)

	// The summary list reflects the rename.
	list := ts.api.Get("/shelves", authz)
	assert.Contains(t, list.Body.String(), "Now Playing")
	assert.NotContains(t, list.Body.String(), "Backlog")
}

func TestDeleteShelf(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	shelf := ts.createShelf(t, authz, "Backlog", "GAME")

	resp := ts.api.Delete("/shelves/"+shelf.ShelfID, authz)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var removed domain.ShelfSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &removed))
	assert.Equal(t, shelf.ShelfID, removed.ShelfID)

	gone := ts.api.Get("/shelves/"+shelf.ShelfID, authz)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestCreateShelf_QuotaExceeded(t *testing.T) {
	ts := setupShelfServer(t)
	authz := ts.bearer(t, "user-1")

	for range domain.MaxShelvesPerUser {
		ts.createShelf(t, authz, "A perfectly fine shelf", "BOOK")
	}

	resp := ts.api.Post("/shelves", authz, map[string]any{
		"shelfName": "One too many",
		"shelfType": "BOOK",
	})
	require.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, string(domainerrors.CodeQuotaExceeded), decodeError(t, resp).Error)
}

func TestShelfRoutes_MethodNotAllowed(t *testing.T) {
	ts := setupShelfServer(t)

	resp := ts.api.Do(http.MethodPatch, "/shelves", ts.bearer(t, "user-1"))
	require.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, string(domainerrors.CodeMethodNotAllowed), decodeError(t, resp).Error)
}
