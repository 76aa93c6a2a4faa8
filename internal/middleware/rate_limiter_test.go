package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	const limit = 3
	e.POST("/send-email", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}, RateLimiter(limit))

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/send-email", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows requests within the limit", func(t *testing.T) {
		for i := 0; i < limit; i++ {
			require.Equal(t, http.StatusOK, post("192.0.2.1:1234").Code, "request %d should be allowed", i+1)
		}
	})

	t.Run("blocks requests exceeding the limit", func(t *testing.T) {
		rec := post("192.0.2.1:1234")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, rec.Body.String())
	})

	t.Run("other clients are unaffected", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("192.0.2.2:1234").Code)
	})
}

func TestRateLimiter_DefaultsInvalidLimit(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(0))

	get := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.9:1"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}
	for i := 0; i < DefaultSignupsPerMinute; i++ {
		require.Equal(t, http.StatusOK, get())
	}
	assert.Equal(t, http.StatusTooManyRequests, get())
}

func TestSignupRateLimiter_OnlyCountsPost(t *testing.T) {
	e := echo.New()
	e.Any("/send-email", func(c echo.Context) error {
		if c.Request().Method != http.MethodPost {
			return c.NoContent(http.StatusMethodNotAllowed)
		}
		return c.NoContent(http.StatusOK)
	}, SignupRateLimiter())

	send := func(method string) int {
		req := httptest.NewRequest(method, "/send-email", nil)
		req.RemoteAddr = "192.0.2.10:1"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < DefaultSignupsPerMinute+5; i++ {
		require.Equal(t, http.StatusMethodNotAllowed, send(http.MethodGet), "GET %d", i+1)
	}
	for i := 0; i < DefaultSignupsPerMinute; i++ {
		require.Equal(t, http.StatusOK, send(http.MethodPost), "POST %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost))
}
