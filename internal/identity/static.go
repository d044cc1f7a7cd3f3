package identity

import (
	"context"
	"sync"

	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
)

// StaticProvider is an in-memory Provider for tests and standalone development
// mode, where no external identity provider is reachable.
type StaticProvider struct {
	mu    sync.RWMutex
	users map[string]UserInfo

	// Call counters, useful for asserting idempotence in tests.
	lookups   int
	deletions int
}

// NewStaticProvider creates a provider seeded with the given users.
func NewStaticProvider(users ...UserInfo) *StaticProvider {
	p := &StaticProvider{users: make(map[string]UserInfo, len(users))}
	for _, u := range users {
		p.users[u.UserID] = u
	}
	return p
}

// AddUser registers or replaces a user.
func (p *StaticProvider) AddUser(info UserInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[info.UserID] = info
}

// GetUserInfo implements Provider.
func (p *StaticProvider) GetUserInfo(_ context.Context, userID string) (*UserInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lookups++
	info, ok := p.users[userID]
	if !ok {
		return nil, domainerrors.NotFoundf("identity provider does not know user %s", userID)
	}
	return &info, nil
}

// DeleteUser implements Provider.
func (p *StaticProvider) DeleteUser(_ context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.deletions++
	delete(p.users, userID)
	return nil
}

// Lookups returns how many GetUserInfo calls were made.
func (p *StaticProvider) Lookups() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lookups
}

// Deletions returns how many DeleteUser calls were made.
func (p *StaticProvider) Deletions() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.deletions
}
