package middleware

import (
	"golang.org/x/time/rate"

	pkgLog "halsologg/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerMinute caps omnibox requests; zero or
// negative disables limiting.
func New(l pkgLog.Logger, ratePerMinute int) Middleware {
	var limiter *rate.Limiter
	if ratePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60), ratePerMinute)
	}
	return Middleware{l: l, limiter: limiter}
}
