package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/forms"
)

// IANA defined IPv4 non-public ranges.
var privateRanges = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress grabs the IP address in the *http.Request.Header
// and promotes it to *http.Request.Context under forms.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r.Header)
			r = r.Clone(context.WithValue(r.Context(), forms.IpAddrKey, ip))
			h.ServeHTTP(w, r)
		})
	}
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers
// for the originating IP address of the request.
//
// GetIPAddress skips addresses from non-public ranges.
// When no public address turns up, "0.0.0.0" returns.
func GetIPAddress(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			raw := strings.TrimSpace(addresses[i])
			ip, err := netip.ParseAddr(raw)
			if err != nil || !ip.IsGlobalUnicast() || isPrivateSubnet(ip) {
				continue
			}

			return raw
		}
	}

	return "0.0.0.0"
}

// isPrivateSubnet checks whether the IP address is in a private subnet.
//
// Only IPv4 subnets are checked.
func isPrivateSubnet(ip netip.Addr) bool {
	if !ip.Is4() {
		return false
	}

	for _, r := range privateRanges {
		if r.Contains(ip) {
			return true
		}
	}

	return false
}
