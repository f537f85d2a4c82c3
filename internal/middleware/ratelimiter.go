package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/metrics"
	"github.com/vidarbha-bioenergy/contact-api/internal/middleware/ratelimiter"
	"github.com/vidarbha-bioenergy/contact-api/internal/utils"
)

const (
	LoginLimitMessage  = "Too many login attempts. Try again later."
	GlobalLimitMessage = "Rate limit exceeded, try again later"
)

func RateLimit(rl *ratelimiter.RateLimiter, message string, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				metrics.RateLimited()
				utils.WriteMessage(w, http.StatusTooManyRequests, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GlobalRateLimit(rl *ratelimiter.RateLimiter) func(http.Handler) http.Handler {
	return RateLimit(rl, GlobalLimitMessage, func(r *http.Request) (string, error) { return "global", nil })
}

// GetIP extracts the client IP from RemoteAddr.
// X-Real-IP and X-Forwarded-For are not trusted.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without port
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
