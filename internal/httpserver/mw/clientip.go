package mw

import (
	"net/http"
	"net/netip"
	"strings"
)

// clientAddr resolves the caller address. With trustProxy the proxy headers
// are tried first: CF-Connecting-IP, the left-most X-Forwarded-For entry, then
// X-Real-IP. RemoteAddr is the fallback.
func clientAddr(r *http.Request, trustProxy bool) (netip.Addr, bool) {
	if trustProxy {
		forwarded, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		for _, v := range []string{
			r.Header.Get("CF-Connecting-IP"),
			forwarded,
			r.Header.Get("X-Real-IP"),
		} {
			if addr, ok := parseAddr(v); ok {
				return addr, true
			}
		}
	}
	return parseAddr(r.RemoteAddr)
}

// parseAddr accepts "ip", "ip:port", "[v6]" and "[v6]:port".
// IPv4-mapped IPv6 addresses are unmapped.
func parseAddr(s string) (netip.Addr, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false
	}
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap(), true
	}
	if addr, err := netip.ParseAddr(strings.Trim(s, "[]")); err == nil {
		return addr.Unmap(), true
	}
	return netip.Addr{}, false
}

// prefixSet matches addresses against CIDRs. Bare IPs become single-host prefixes.
type prefixSet []netip.Prefix

func parsePrefixes(list []string) prefixSet {
	var set prefixSet
	for _, raw := range list {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if p, err := netip.ParsePrefix(s); err == nil {
			set = append(set, p.Masked())
			continue
		}
		if addr, ok := parseAddr(s); ok {
			set = append(set, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return set
}

func (ps prefixSet) contains(addr netip.Addr) bool {
	for _, p := range ps {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
