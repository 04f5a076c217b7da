package admin

import (
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/http/exts"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *Admin) createGroup(c *fiber.Ctx) error {
	var data struct {
		Slug        string `json:"slug" form:"slug" validate:"required,lowercase,max=200"`
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	group, err := services.NewGroup(v.db, data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

// Groups are immutable once posts reference them, aside from editorial
// corrections going through here.
func (v *Admin) editGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(v.db, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("group was not found: %v", err))
	}

	var data struct {
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	group, err = services.EditGroup(v.db, group, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func (v *Admin) deleteGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(v.db, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("group was not found: %v", err))
	}

	if err := services.DeleteGroup(v.db, group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
