package api

import (
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *API) getProfile(c *fiber.Ctx) error {
	author, err := services.GetAccountWithName(v.db, c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("profile was not found: %v", err))
	}

	tx := services.FilterPostWithAuthor(v.db, author)
	page, err := services.PaginatePost(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var following bool
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		if following, err = services.IsFollowing(v.db, user, author); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(profileContext{
		Author:     author,
		PostsCount: page.Count,
		Following:  following,
		PageObj:    page,
	})
}
