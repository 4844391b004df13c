// Package webapi assembles the Fiber application: middleware, the service
// index and health endpoints, and the account routes.
package webapi

import (
	"strings"

	"github.com/amirasaad/accounts/infra/initializer"
	"github.com/amirasaad/accounts/webapi/account"
	"github.com/amirasaad/accounts/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Service identity reported by the index endpoint.
const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: ServiceName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Security headers on every response
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ContentSecurityPolicy: "default-src 'self'; object-src 'none'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))
	app.Use(requestid.New())

	// Rate limiting keyed by client address, proxy-aware
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	// Root URL response
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    ServiceName,
			"version": ServiceVersion,
		})
	})

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK"})
	})

	account.Routes(app, deps.AccountService)

	return app
}
