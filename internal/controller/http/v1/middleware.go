package v1

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/Pavel771123/nataliya/internal/metrics"
)

const rateLimitKeyPrefix = "lead:"

// RateLimit rejects requests of a client that exceeded its window. Limiter failures let the
// request through.
func RateLimit(log *slog.Logger, limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), rateLimitKeyPrefix+ip)
			if err != nil {
				log.WarnContext(r.Context(), "rate limiter unavailable", slog.String("err", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				metrics.LeadsSubmitted.WithLabelValues(metrics.ResultRateLimited).Inc()
				log.InfoContext(r.Context(), "lead submission rate limited", slog.String("client_ip", ip))
				writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// BearerAuth requires the Authorization header to carry token.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="leads"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects chi's RealIP middleware to have rewritten RemoteAddr already.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
