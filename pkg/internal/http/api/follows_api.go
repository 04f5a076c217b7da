package api

import (
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func (v *API) listFollowedFeed(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	tx := services.FilterPostWithFollowed(v.db, user)
	page, err := services.PaginatePost(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(feedContext{PageObj: page})
}

func (v *API) followAuthor(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccountWithName(v.db, c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("profile was not found: %v", err))
	}

	if _, err := services.FollowAuthor(v.db, user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + author.Name + "/")
}

func (v *API) unfollowAuthor(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	author, err := services.GetAccountWithName(v.db, c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("profile was not found: %v", err))
	}

	if err := services.UnfollowAuthor(v.db, user, author); err != nil {
		log.Warn().Err(err).Str("author", author.Name).Msg("Unable to unfollow author, continuing...")
	}

	return c.Redirect("/profile/" + author.Name + "/")
}
