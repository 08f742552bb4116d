package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"ownerboard.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second, app.Config.TrustedProxies...),
	}
}

// Handler wraps router with the middleware chain shared by every route:
// request logging, security headers, rate limiting and compression.
func (api *RestAPI) Handler(router *httprouter.Router) http.Handler {
	var h http.Handler = router
	h = CompressionMiddleware(h)
	h = api.rateLimiter.Handler(h)
	h = api.WithSecurityHeaders(h)
	h = NewRequestLoggingMiddleware(api.Logger)(h)
	return h
}

// Shutdown releases background resources held by the middleware.
func (api *RestAPI) Shutdown() {
	api.rateLimiter.Stop()
}
