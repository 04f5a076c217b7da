package api

import (
	"errors"
	"fmt"
	"io"

	"github.com/emberlight/chronicle/pkg/internal/http/exts"
	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

func (v *API) listIndexFeed(c *fiber.Ctx) error {
	route := c.OriginalURL()
	if body, hit := v.pages.Get(c.UserContext(), route); hit {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set("X-Page-Cache", "hit")
		return c.Send(body)
	}

	page, err := services.PaginatePost(v.db, c.QueryInt("page", 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(feedContext{PageObj: page})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := v.pages.Set(c.UserContext(), route, body); err != nil {
		log.Warn().Err(err).Msg("An error occurred when caching the homepage...")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (v *API) getPostDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post was not found")
	}

	item, err := services.GetPost(v.db, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post was not found: %v", err))
	}

	comments, err := services.ListComments(v.db, item)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	count, err := services.CountPost(services.FilterPostWithAuthor(v.db, item.Author))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(postDetailContext{
		Post:       item,
		Comments:   comments,
		PostsCount: count,
		Form:       newFormState(map[string]string{"text": ""}),
	})
}

type postForm struct {
	Text  string `json:"text" form:"text" validate:"required"`
	Group string `json:"group" form:"group"`
}

func (f postForm) values() map[string]string {
	return map[string]string{"text": f.Text, "group": f.Group}
}

// readImageForm pulls the optional image attachment out of the multipart
// form. The second return value is a field-level validation message.
func readImageForm(c *fiber.Ctx) (*models.PostImage, string) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, ""
	}

	source, err := file.Open()
	if err != nil {
		return nil, fmt.Sprintf("unable to open attachment: %v", err)
	}
	defer source.Close()

	payload, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Sprintf("unable to read attachment: %v", err)
	}

	image, err := services.SaveAttachment(file.Filename, payload)
	if err != nil {
		return nil, err.Error()
	}

	return &image, ""
}

// discardImage cleans up an upload whose post row failed to save, so no
// orphaned file lingers under the uploads path.
func discardImage(item *models.Post) {
	if item.Image == nil {
		return
	}
	if err := services.DiscardAttachment(item.Image.Data()); err != nil {
		log.Warn().Err(err).Msg("Unable to discard orphaned attachment...")
	}
}

// bindPostForm validates the submission and materializes a post out of it.
// A non-nil context means the form must be re-rendered with its errors; no
// state has been written in that case.
func (v *API) bindPostForm(c *fiber.Ctx, item *models.Post, isEdit bool) (*postFormContext, error) {
	var data postForm

	if err := exts.BindAndValidate(c, &data); err != nil {
		var invalid *exts.ValidationError
		if errors.As(err, &invalid) {
			return &postFormContext{
				Form:   formState{Values: data.values(), Errors: invalid.Fields},
				IsEdit: isEdit,
			}, nil
		}
		return nil, err
	}

	item.Text = data.Text

	item.GroupID = nil
	item.Group = nil
	if len(data.Group) > 0 {
		group, err := services.GetGroup(v.db, data.Group)
		if err != nil {
			return &postFormContext{
				Form: formState{
					Values: data.values(),
					Errors: map[string]string{"group": "group does not exist"},
				},
				IsEdit: isEdit,
			}, nil
		}
		item.GroupID = &group.ID
	}

	if image, message := readImageForm(c); len(message) > 0 {
		return &postFormContext{
			Form: formState{
				Values: data.values(),
				Errors: map[string]string{"image": message},
			},
			IsEdit: isEdit,
		}, nil
	} else if image != nil {
		item.Image = lo.ToPtr(datatypes.NewJSONType(*image))
	}

	return nil, nil
}

func (v *API) getCreatePost(c *fiber.Ctx) error {
	return c.JSON(postFormContext{
		Form:   newFormState(map[string]string{"text": "", "group": ""}),
		IsEdit: false,
	})
}

func (v *API) createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var item models.Post
	if invalid, err := v.bindPostForm(c, &item, false); err != nil {
		return err
	} else if invalid != nil {
		return c.JSON(invalid)
	}

	if _, err := services.NewPost(v.db, user, item); err != nil {
		discardImage(&item)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + user.Name + "/")
}

func (v *API) getEditPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post was not found")
	}

	item, err := services.GetPost(v.db, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post was not found: %v", err))
	}

	// Only the author may edit; everybody else is bounced back to the post.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d/", item.ID))
	}

	values := map[string]string{"text": item.Text, "group": ""}
	if item.Group != nil {
		values["group"] = item.Group.Slug
	}

	return c.JSON(postFormContext{Form: newFormState(values), IsEdit: true})
}

func (v *API) editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post was not found")
	}

	item, err := services.GetPost(v.db, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post was not found: %v", err))
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d/", item.ID))
	}

	previous := item.Image
	if invalid, err := v.bindPostForm(c, &item, true); err != nil {
		return err
	} else if invalid != nil {
		return c.JSON(invalid)
	}

	if _, err := services.EditPost(v.db, item); err != nil {
		// Only a freshly uploaded file is ours to clean up; the stored image
		// still belongs to the unchanged row.
		if item.Image != previous {
			discardImage(&item)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d/", item.ID))
}

func (v *API) deletePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	id, err := c.ParamsInt("postId")
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post was not found")
	}

	item, err := services.GetPost(v.db, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post was not found: %v", err))
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d/", item.ID))
	}

	if err := services.DeletePost(v.db, item); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect("/profile/" + user.Name + "/")
}
