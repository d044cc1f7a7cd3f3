package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelfspace/shelfspace-server/internal/domain"
	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getUserProfile",
		Method:      http.MethodGet,
		Path:        "/users/{userId}",
		Summary:     "Get user profile",
		Description: "Returns the caller's profile, creating it on first access",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetProfile)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteUser",
		Method:      http.MethodDelete,
		Path:        "/users/{userId}",
		Summary:     "Delete user",
		Description: "Deletes the caller's profile, all shelves, and the identity account",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteUser)
}

// === DTOs ===

// ProfileInput addresses a profile by user ID.
type ProfileInput struct {
	UserID string `path:"userId" doc:"User ID"`
}

// ProfileOutput wraps a profile response for Huma.
type ProfileOutput struct {
	Body domain.UserProfile
}

// === Handlers ===

// requireSelf returns the caller's user ID after checking it matches the
// addressed user. Unlike shelf ownership, addressing another user's profile
// is an explicit 403: the route itself names the resource owner.
func requireSelf(ctx context.Context, pathUserID string) (string, error) {
	callerID, err := GetUserID(ctx)
	if err != nil {
		return "", err
	}
	if callerID != pathUserID {
		return "", domainerrors.AccessDenied("you may only access your own profile")
	}
	return callerID, nil
}

func (s *Server) handleGetProfile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	userID, err := requireSelf(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	profile, err := s.services.Profile.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: *profile}, nil
}

func (s *Server) handleDeleteUser(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	userID, err := requireSelf(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.services.Profile.Delete(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Body: *snapshot}, nil
}
