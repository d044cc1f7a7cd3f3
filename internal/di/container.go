// Package di provides dependency injection configuration for the ShelfSpace server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/shelfspace/shelfspace-server/internal/auth"
	"github.com/shelfspace/shelfspace-server/internal/config"
	"github.com/shelfspace/shelfspace-server/internal/di/providers"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/logger"
	"github.com/shelfspace/shelfspace-server/internal/service"
	"github.com/shelfspace/shelfspace-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Identity provider
	do.Provide(injector, providers.ProvideIdentityProvider)

	// Business services
	do.Provide(injector, providers.ProvideProfileService)
	do.Provide(injector, providers.ProvideShelfService)
	do.Provide(injector, providers.ProvideItemService)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)
	_ = do.MustInvoke[identity.Provider](injector)

	// Business services
	_ = do.MustInvoke[*service.ProfileService](injector)
	_ = do.MustInvoke[*service.ShelfService](injector)
	_ = do.MustInvoke[*service.ItemService](injector)

	// Server
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
