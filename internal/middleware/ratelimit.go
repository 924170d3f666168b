package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"skc.dev/internal/ratelimit"
)

// Allower counts a request against a key
type Allower interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// ClientIP keys requests by remote address. chi's RealIP middleware has
// already rewritten RemoteAddr from proxy headers when it is installed.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests over the limiter's budget with 429
func RateLimit(limiter Allower, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("rate limit check failed", zap.String("key", key), zap.Error(err))
				writeJSONError(w, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining()))
			h.Set("X-RateLimit-Reset", res.ResetAt.Format(time.RFC3339))

			if !res.Allowed() {
				retryAfter := int(time.Until(res.ResetAt).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				h.Set("Retry-After", strconv.Itoa(retryAfter))

				logger.Warn("rate limit exceeded",
					zap.String("key", key),
					zap.String("path", r.URL.Path),
					zap.Int("count", res.Count))
				writeJSONError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":` + strconv.Quote(msg) + `}`))
}
