// Package identity abstracts the external identity provider. The server never
// stores credentials itself; it looks up user info when a profile is first
// created and forwards account deletion requests when a user is removed.
package identity

import "context"

// UserInfo is the account information held by the identity provider.
type UserInfo struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Provider is the identity-provider collaborator interface.
type Provider interface {
	// GetUserInfo fetches account information for the given user.
	// Returns a NOT_FOUND domain error when the provider does not know the user.
	GetUserInfo(ctx context.Context, userID string) (*UserInfo, error)

	// DeleteUser asks the provider to remove the account.
	DeleteUser(ctx context.Context, userID string) error
}
