package middleware

import (
	"camping/shared"
	"camping/shared/constant"
	"camping/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit is a fixed-window limiter keyed by client IP. Redis failures fail open.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			window := time.Duration(a.config.App.RateLimiter.WindowSeconds) * time.Second

			cacheKey := shared.BuildCacheKey(a.config.App.Name, cacheKeyRateLimit, a.getClientIP(r))

			count, ttl, err := a.cache.Increment(r.Context(), cacheKey, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")

				next.ServeHTTP(w, r)

				return
			}

			if ttl <= 0 {
				ttl = window
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(int(ttl.Seconds())))

			if count > int64(maxReqs) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP uses the peer address unless the server sits behind a trusted proxy. Behind one,
// X-Real-IP or the last X-Forwarded-For hop is the address the proxy saw; earlier hops are
// client-supplied.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if a.config.App.RateLimiter.TrustProxy {
		if xri := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); xri != "" {
			return xri
		}

		if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
			hops := strings.Split(xff, ",")
			if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
				return last
			}
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
