package providers

import (
	"github.com/samber/do/v2"

	"github.com/shelfspace/shelfspace-server/internal/config"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/logger"
)

// ProvideIdentityProvider provides the identity provider client.
// With no IDENTITY_URL configured the server runs standalone against an
// in-memory provider, fed by the dev-login endpoint.
func ProvideIdentityProvider(i do.Injector) (identity.Provider, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Identity.BaseURL == "" {
		log.Warn("No identity provider configured, using in-memory accounts")
		return identity.NewStaticProvider(), nil
	}

	log.Info("Identity provider configured", "base_url", cfg.Identity.BaseURL)
	return identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.APIToken, cfg.Identity.Timeout, log.Logger), nil
}
