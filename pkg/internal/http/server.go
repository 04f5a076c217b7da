package http

import (
	"errors"

	"github.com/emberlight/chronicle/pkg/internal/http/admin"
	"github.com/emberlight/chronicle/pkg/internal/http/api"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func NewServer(db *gorm.DB, reader *services.TokenReader, pages *services.PageCache) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Chronicle",
		AppName:               "Chronicle",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             16 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling request...")
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(authenticate(db, reader))

	api.MapAPIs(app, api.New(db, pages))
	admin.MapControllers(app, admin.New(db), "/admin")

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	})

	return app
}
