package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultSignupsPerMinute is the per-IP signup allowance used by the server.
const DefaultSignupsPerMinute = 10

// RateLimiter limits each client IP to perMinute requests per minute, with
// bursts of up to perMinute. Denied requests get the JSON error envelope the
// signup endpoint uses.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	return rateLimiter(perMinute, middleware.DefaultSkipper)
}

// SignupRateLimiter applies the default signup allowance to POST requests
// only, so other methods still reach the handler's 405.
func SignupRateLimiter() echo.MiddlewareFunc {
	return rateLimiter(DefaultSignupsPerMinute, func(c echo.Context) bool {
		return c.Request().Method != http.MethodPost
	})
}

func rateLimiter(perMinute int, skipper middleware.Skipper) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultSignupsPerMinute
	}
	config := middleware.RateLimiterConfig{
		Skipper: skipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many requests. Please try again later."})
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
