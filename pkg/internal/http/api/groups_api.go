package api

import (
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *API) listGroupFeed(c *fiber.Ctx) error {
	group, err := services.GetGroup(v.db, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("group was not found: %v", err))
	}

	tx := services.FilterPostWithGroup(v.db, group)
	page, err := services.PaginatePost(tx, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groupContext{Group: group, PageObj: page})
}
