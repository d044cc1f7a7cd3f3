package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/shelfspace/shelfspace-server/internal/identity"
)

// Dev-login exists so the API can be exercised end to end without the
// external identity provider. It is only registered in development mode.
func (s *Server) registerAuthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "devLogin",
		Method:      http.MethodPost,
		Path:        "/auth/dev-login",
		Summary:     "Development login",
		Description: "Mints an access token for an arbitrary user. Development mode only.",
		Tags:        []string{"Auth"},
	}, s.handleDevLogin)
}

// DevLoginRequest is the request body for a development login.
type DevLoginRequest struct {
	UserID   string `json:"userId" minLength:"1" doc:"User ID to impersonate"`
	Nickname string `json:"nickname,omitempty" doc:"Nickname registered with the in-memory identity provider"`
}

// DevLoginInput wraps the dev login request for Huma.
type DevLoginInput struct {
	Body DevLoginRequest
}

// DevLoginResponse carries the minted token.
type DevLoginResponse struct {
	AccessToken string `json:"accessToken" doc:"PASETO v4.local access token"`
	ExpiresIn   int64  `json:"expiresIn" doc:"Token lifetime in seconds"`
}

// DevLoginOutput wraps the dev login response for Huma.
type DevLoginOutput struct {
	Body DevLoginResponse
}

func (s *Server) handleDevLogin(_ context.Context, input *DevLoginInput) (*DevLoginOutput, error) {
	nickname := input.Body.Nickname
	if nickname == "" {
		nickname = input.Body.UserID
	}

	// Register the user with the in-memory provider so lazy profile creation
	// succeeds on the first authenticated request.
	if static, ok := s.identity.(*identity.StaticProvider); ok {
		static.AddUser(identity.UserInfo{
			UserID:   input.Body.UserID,
			Nickname: nickname,
		})
	}

	token, err := s.tokens.GenerateAccessToken(input.Body.UserID, nickname)
	if err != nil {
		return nil, err
	}

	s.logger.Info("dev login issued",
		"user_id", input.Body.UserID,
	)

	return &DevLoginOutput{
		Body: DevLoginResponse{
			AccessToken: token,
			ExpiresIn:   int64(s.tokens.AccessTokenDuration().Seconds()),
		},
	}, nil
}
