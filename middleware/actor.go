package middleware

import (
	"net/http"
	"strings"

	"github.com/tradeverity/governance-core/userctx"
)

// ActorContext enriches the authenticated actor with request metadata (ip,
// user agent) so audit entries written downstream carry it. Runs after
// RequireAuth.
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := userctx.GetActor(r.Context())
		if actor.UserID == "" {
			next.ServeHTTP(w, r)
			return
		}

		actor.IP = getIPAddress(r)
		actor.UserAgent = r.UserAgent()

		next.ServeHTTP(w, r.WithContext(userctx.SetActor(r.Context(), actor)))
	})
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
