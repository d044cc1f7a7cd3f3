package api

import (
	"log/slog"
	"net/http"

	"github.com/shelfspace/shelfspace-server/internal/http/response"
	"github.com/shelfspace/shelfspace-server/internal/ratelimit"
)

// RateLimitMiddleware creates a middleware that rate limits requests by
// client IP. Returns 429 Too Many Requests when the limit is exceeded.
// Runs after RealIP so RemoteAddr already reflects forwarding headers.
func RateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("rate limit exceeded",
					"ip", key,
					"path", r.URL.Path,
				)
				response.TooManyRequests(w, logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the request's remote address with the port stripped.
func clientIP(r *http.Request) string {
	ip := r.RemoteAddr
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			return ip[:i]
		}
	}
	return ip
}
