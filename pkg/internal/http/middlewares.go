package http

import (
	"strings"

	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func retrieveToken(c *fiber.Ctx) string {
	if token := c.Cookies("identity_token"); len(token) > 0 {
		return token
	}
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// authenticate resolves the identity token into a local account and leaves
// it in the request locals. Requests without a valid token simply stay
// anonymous; route-level guards decide what that means.
func authenticate(db *gorm.DB, reader *services.TokenReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := retrieveToken(c)
		if len(token) == 0 || reader == nil {
			return c.Next()
		}

		claims, err := reader.Parse(token)
		if err != nil {
			log.Debug().Err(err).Msg("Unable to parse identity token, continuing as anonymous...")
			return c.Next()
		}

		account, err := services.EnsureAccount(db, claims.Name, claims.Nick, claims.Avatar)
		if err != nil {
			log.Warn().Err(err).Str("name", claims.Name).Msg("An error occurred when syncing account...")
			return c.Next()
		}

		c.Locals("user", account)
		c.Locals("claims", claims)

		return c.Next()
	}
}
