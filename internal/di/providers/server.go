package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/shelfspace/shelfspace-server/internal/api"
	"github.com/shelfspace/shelfspace-server/internal/auth"
	"github.com/shelfspace/shelfspace-server/internal/config"
	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/logger"
	"github.com/shelfspace/shelfspace-server/internal/ratelimit"
	"github.com/shelfspace/shelfspace-server/internal/service"
)

// RateLimiterHandle wraps the rate limiter with shutdown capability.
// Limiter is nil when rate limiting is disabled.
type RateLimiterHandle struct {
	Limiter *ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	if h.Limiter != nil {
		h.Limiter.Stop()
	}
	return nil
}

// ProvideRateLimiter provides the per-client request rate limiter.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		log.Warn("Rate limiting disabled")
		return &RateLimiterHandle{}, nil
	}

	log.Info("Rate limiting enabled",
		"requests_per_second", cfg.RateLimit.RequestsPerSecond,
		"burst", cfg.RateLimit.Burst,
	)
	return &RateLimiterHandle{
		Limiter: ratelimit.New(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	}, nil
}

// HTTPServerHandle wraps the HTTP server with shutdown capability.
type HTTPServerHandle struct {
	Server *http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts listening in the
// background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	provider := do.MustInvoke[identity.Provider](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)

	services := &api.Services{
		Profile: do.MustInvoke[*service.ProfileService](i),
		Shelf:   do.MustInvoke[*service.ShelfService](i),
		Item:    do.MustInvoke[*service.ItemService](i),
	}

	handler := api.NewServer(
		storeHandle.Store,
		services,
		tokens,
		provider,
		limiterHandle.Limiter,
		log.Logger,
		cfg.IsDevelopment(),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
