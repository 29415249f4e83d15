package health

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Status is the aggregate service health status.
type Status string

const (
	// StatusHealthy means every check passed.
	StatusHealthy Status = "healthy"

	// StatusDegraded means the service is serving but impaired. Reserved
	// for checks that are advisory rather than required; the current check
	// set treats every failure as unhealthy.
	StatusDegraded Status = "degraded"

	// StatusUnhealthy means at least one required check failed.
	StatusUnhealthy Status = "unhealthy"
)

// Check is the recorded outcome of a single health check.
type Check struct {
	// Name identifies the check (e.g., "docs_root_exists").
	Name string `json:"name"`

	// Status is "ok" or "fail".
	Status string `json:"status"`

	// Detail carries extra context, typically the failure reason.
	Detail string `json:"detail,omitempty"`
}

// Result is the full health report returned by Check.
type Result struct {
	// Status is the aggregate status across all checks.
	Status Status `json:"status"`

	// Service is the service name the report describes.
	Service string `json:"service"`

	// Checks lists individual check outcomes in registration order.
	Checks []Check `json:"checks"`

	// ComputedAt is when the checks were actually evaluated. Cached
	// responses keep the original evaluation time.
	ComputedAt time.Time `json:"computed_at"`
}

// NamedCheck pairs a check name with its evaluation function. Run returns
// an optional detail string and a non-nil error on failure.
type NamedCheck struct {
	Name string
	Run  func(ctx context.Context) (detail string, err error)
}

// Checker evaluates a fixed set of health checks and caches the aggregate
// result for a TTL so frequent probes do not hammer the filesystem.
//
// The cached result is stored behind an atomic pointer; concurrent callers
// within the TTL all observe the same snapshot, and at most one of the
// callers arriving after expiry recomputes.
type Checker struct {
	service string
	ttl     time.Duration
	checks  []NamedCheck

	mu     sync.Mutex
	cached atomic.Pointer[Result]

	// now is stubbed in tests.
	now func() time.Time

	// onCacheLookup, when set, observes cache hits and misses.
	onCacheLookup func(hit bool)
}

// DefaultCacheTTL is used when New receives a non-positive TTL.
const DefaultCacheTTL = 5 * time.Second

// New creates a Checker for the named service with the given cache TTL and
// checks. Checks run sequentially in the order given.
func New(service string, ttl time.Duration, checks ...NamedCheck) *Checker {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Checker{
		service: service,
		ttl:     ttl,
		checks:  checks,
		now:     time.Now,
	}
}

// OnCacheLookup registers a callback invoked on every Check call with
// whether the cached result was served. Used to feed metrics.
func (c *Checker) OnCacheLookup(fn func(hit bool)) {
	c.onCacheLookup = fn
}

// Check returns the current health result, serving the cached snapshot
// when it is younger than the TTL and recomputing otherwise.
func (c *Checker) Check(ctx context.Context) Result {
	if cached := c.cached.Load(); cached != nil && c.now().Sub(cached.ComputedAt) < c.ttl {
		if c.onCacheLookup != nil {
			c.onCacheLookup(true)
		}
		return *cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have recomputed while we waited for the lock.
	if cached := c.cached.Load(); cached != nil && c.now().Sub(cached.ComputedAt) < c.ttl {
		if c.onCacheLookup != nil {
			c.onCacheLookup(true)
		}
		return *cached
	}

	if c.onCacheLookup != nil {
		c.onCacheLookup(false)
	}

	result := c.evaluate(ctx)
	c.cached.Store(&result)
	return result
}

// Invalidate drops the cached result so the next Check recomputes.
func (c *Checker) Invalidate() {
	c.cached.Store(nil)
}

func (c *Checker) evaluate(ctx context.Context) Result {
	result := Result{
		Status:     StatusHealthy,
		Service:    c.service,
		Checks:     make([]Check, 0, len(c.checks)),
		ComputedAt: c.now(),
	}

	for _, nc := range c.checks {
		check := Check{Name: nc.Name, Status: "ok"}
		detail, err := nc.Run(ctx)
		if err != nil {
			check.Status = "fail"
			check.Detail = err.Error()
			result.Status = StatusUnhealthy
		} else if detail != "" {
			check.Detail = detail
		}
		result.Checks = append(result.Checks, check)
	}

	return result
}
