package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RateLimiterTestSuite defines the test suite for rate limiting middleware
type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRateLimiterTestSuite runs the test suite
func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) limiter(rps, burst int) echo.MiddlewareFunc {
	return RateLimiter(config.SecurityConfig{
		RateLimitPerSecond: rps,
		RateLimitBurst:     burst,
	})
}

func (s *RateLimiterTestSuite) request(mw echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec
}

func (s *RateLimiterTestSuite) TestRateLimiter_AllowsWithinBurst() {
	mw := s.limiter(1, 2)

	s.Equal(http.StatusOK, s.request(mw, "10.0.0.1").Code)
	s.Equal(http.StatusOK, s.request(mw, "10.0.0.1").Code)
}

func (s *RateLimiterTestSuite) TestRateLimiter_BlocksBeyondBurst() {
	mw := s.limiter(1, 1)

	s.Equal(http.StatusOK, s.request(mw, "10.0.0.2").Code)

	rec := s.request(mw, "10.0.0.2")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_004")
}

func (s *RateLimiterTestSuite) TestRateLimiter_TracksIPsIndependently() {
	mw := s.limiter(1, 1)

	s.Equal(http.StatusOK, s.request(mw, "10.0.0.3").Code)
	s.Equal(http.StatusOK, s.request(mw, "10.0.0.4").Code)
}

func (s *RateLimiterTestSuite) TestRateLimiter_InstancesAreIndependent() {
	first := s.limiter(1, 1)
	second := s.limiter(1, 1)

	s.Equal(http.StatusOK, s.request(first, "10.0.0.5").Code)
	s.Equal(http.StatusOK, s.request(second, "10.0.0.5").Code)
}

func (s *RateLimiterTestSuite) TestNewIPRateLimiter_DefaultsOnZeroConfig() {
	l := newIPRateLimiter(config.SecurityConfig{})

	s.EqualValues(fallbackRequestsPerSecond, l.rps)
	s.Equal(2*fallbackRequestsPerSecond, l.burst)
}
