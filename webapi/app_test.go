package webapi

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/accounts/config"
	"github.com/amirasaad/accounts/infra/initializer"
	accountsvc "github.com/amirasaad/accounts/pkg/service/account"
	"github.com/amirasaad/accounts/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(maxRequests int) *fiber.App {
	repo := testutils.NewFakeAccountRepository()
	logger := slog.Default()
	cfg := &config.AppConfig{
		Env: "test",
		RateLimit: config.RateLimitConfig{
			MaxRequests: maxRequests,
			Window:      time.Minute,
		},
	}
	return SetupApp(&initializer.Deps{
		Config:         cfg,
		Logger:         logger,
		AccountRepo:    repo,
		AccountService: accountsvc.New(repo, logger),
	})
}

func TestIndex(t *testing.T) {
	app := newTestApp(100)

	resp := testutils.MakeRequest(app, "GET", "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, ServiceName, body["name"])
	assert.Equal(t, ServiceVersion, body["version"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(100)

	resp := testutils.MakeRequest(app, "GET", "/health", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}

func TestSecurityHeaders(t *testing.T) {
	app := newTestApp(100)

	resp := testutils.MakeRequest(app, "GET", "/health", "", "")
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", resp.Header.Get("X-XSS-Protection"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'; object-src 'none'", resp.Header.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestAccountRoutesAreMounted(t *testing.T) {
	app := newTestApp(100)

	resp := testutils.MakeRequest(app, "GET", "/accounts", "", "")
	defer resp.Body.Close() //nolint: errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var accounts []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accounts))
	assert.Empty(t, accounts)
}

func TestMethodNotAllowedOnKnownPath(t *testing.T) {
	app := newTestApp(100)

	resp := testutils.MakeRequest(app, "PATCH", "/accounts/1", testutils.RandomAccountBody(), "application/json")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(2)

	for i := 0; i < 2; i++ {
		resp := testutils.MakeRequest(app, "GET", "/health", "", "")
		resp.Body.Close() //nolint: errcheck
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := testutils.MakeRequest(app, "GET", "/health", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
