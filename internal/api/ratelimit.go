package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests beyond perSecond with 429. A non-positive rate
// disables limiting.
func RateLimit(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiter.Allow() {
				return writeError(c, http.StatusTooManyRequests, "rate_limit_error", "too many requests")
			}
			return next(c)
		}
	}
}
