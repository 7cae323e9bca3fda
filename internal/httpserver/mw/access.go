package mw

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/ekpss/quizapp/internal/logger"
)

// denial has the same shape as the handlers error body
type denial struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func deny(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(denial{Code: code, Message: msg})
}

// AllowCIDRs restricts the ops endpoints (/readyz, /reload, /infra) to callers
// inside allowed. Entries may be CIDRs or bare IPs. An empty list lets everyone through.
func AllowCIDRs(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	set := parsePrefixes(allowed)
	if len(set) == 0 {
		return passthrough
	}
	log = log.With(logger.Component("allow_cidrs"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr, ok := clientAddr(r, trustProxy)
			if !ok || !set.contains(addr) {
				log.Warn("ops request rejected",
					logger.String("client", r.RemoteAddr),
					logger.String("resolved", addr.String()),
					logger.String("path", r.URL.Path))
				deny(w, http.StatusForbidden, "FORBIDDEN", "client address not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AllowHosts restricts the ops endpoints to requests whose Host header matches
// one of hosts. Patterns like "*.example.com" match any subdomain. The port is
// ignored and matching is case-insensitive. An empty list lets everyone through.
func AllowHosts(hosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(hosts) == 0 {
		return passthrough
	}
	log = log.With(logger.Component("allow_hosts"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := hostOnly(r.Host)
			for _, pattern := range hosts {
				if matchHost(host, pattern) {
					next.ServeHTTP(w, r)
					return
				}
			}
			log.Warn("ops request rejected",
				logger.String("host", r.Host),
				logger.String("path", r.URL.Path))
			deny(w, http.StatusForbidden, "FORBIDDEN", "host not allowed")
		})
	}
}

func passthrough(next http.Handler) http.Handler { return next }

func hostOnly(hostport string) string {
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		return strings.ToLower(h)
	}
	return strings.ToLower(hostport)
}

// matchHost compares host against an exact name or a "*.suffix" wildcard.
// The wildcard does not match the bare suffix.
func matchHost(host, pattern string) bool {
	pattern = strings.ToLower(pattern)
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok && strings.HasPrefix(suffix, ".") {
		return strings.HasSuffix(host, suffix)
	}
	return host == pattern
}
