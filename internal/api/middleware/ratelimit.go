package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/ryhoangf/iValuate/internal/metrics"
)

// RateLimit returns Echo middleware that sheds API traffic above perSecond
// with a 429. Probe and scrape paths are never limited. A non-positive
// perSecond disables the limiter.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	retryAfter := strconv.Itoa(max(1, int(1/perSecond)))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := operationalPaths[c.Request().URL.Path]; ok {
				return next(c)
			}

			if !limiter.Allow() {
				metrics.HTTPRateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", retryAfter)
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"title":  http.StatusText(http.StatusTooManyRequests),
					"detail": "rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
