package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultRefillRate is how many requests per second a Visitor regains.
	DefaultRefillRate rate.Limit = 5

	// DefaultBurst is how many requests a Visitor can make back to back.
	DefaultBurst = 20

	visitorTTL = 60 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	refill rate.Limit
	burst  int
	val    map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a Visitors applying DefaultRefillRate and DefaultBurst
// to each new Visitor.
func NewVisitors() *Visitors {
	return NewVisitorsWithLimit(DefaultRefillRate, DefaultBurst)
}

// NewVisitorsWithLimit constructs a Visitors applying the provided
// refill rate and burst to each new Visitor.
func NewVisitorsWithLimit(refill rate.Limit, burst int) *Visitors {
	return &Visitors{
		refill: refill,
		burst:  burst,
		val:    make(map[string]Visitor),
	}
}

// Fetch retrieves the Visitor for the given ip, creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.refill, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit rejects requests with 429 Too Many Requests once the requesting
// IP address spends its Visitor's burst faster than the limiter refills.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(GetIPAddress(r.Header)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
