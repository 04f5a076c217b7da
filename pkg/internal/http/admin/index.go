package admin

import (
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Admin struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Admin {
	return &Admin{db: db}
}

func adminRequired(c *fiber.Ctx) error {
	claims, authenticated := c.Locals("claims").(*services.LoginClaims)
	if !authenticated || !claims.Admin {
		return fiber.NewError(fiber.StatusForbidden, "editorial permission required")
	}
	return c.Next()
}

func MapControllers(app *fiber.App, v *Admin, baseURL string) {
	admin := app.Group(baseURL, adminRequired)
	{
		admin.Post("/groups", v.createGroup)
		admin.Put("/groups/:slug", v.editGroup)
		admin.Delete("/groups/:slug", v.deleteGroup)
	}
}
