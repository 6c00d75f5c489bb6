package middleware

import (
	appcontext "github.com/SeakMengs/name2ecert/internal/app_context"
	ratelimiter "github.com/SeakMengs/name2ecert/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.ClientRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.ClientRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}
