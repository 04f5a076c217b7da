package api

import (
	"errors"
	"fmt"

	"github.com/emberlight/chronicle/pkg/internal/http/exts"
	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (v *API) createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post was not found")
	}

	post, err := services.GetPost(v.db, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post was not found: %v", err))
	}

	var data struct {
		Text string `json:"text" form:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		var invalid *exts.ValidationError
		if errors.As(err, &invalid) {
			return c.JSON(commentFormContext{
				Post: post,
				Form: formState{
					Values: map[string]string{"text": data.Text},
					Errors: invalid.Fields,
				},
			})
		}
		return err
	}

	if _, err := services.NewComment(v.db, user, post, data.Text); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d/", post.ID))
}
