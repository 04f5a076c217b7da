package api

import (
	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type API struct {
	db    *gorm.DB
	pages *services.PageCache
}

func New(db *gorm.DB, pages *services.PageCache) *API {
	return &API{db: db, pages: pages}
}

// loginRequired guards web routes: anonymous visitors are sent to the login
// flow of the identity provider, never an error status.
func loginRequired(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		target := viper.GetString("security.login_url")
		if len(target) == 0 {
			target = "/login"
		}
		return c.Redirect(target)
	}
	return c.Next()
}

func MapAPIs(app *fiber.App, v *API) {
	app.Get("/", v.listIndexFeed)
	app.Get("/group/:slug", v.listGroupFeed)
	app.Get("/profile/:username", v.getProfile)
	app.Get("/posts/:postId", v.getPostDetail)

	app.Get("/create", loginRequired, v.getCreatePost)
	app.Post("/create", loginRequired, v.createPost)
	app.Get("/posts/:postId/edit", loginRequired, v.getEditPost)
	app.Post("/posts/:postId/edit", loginRequired, v.editPost)
	app.Post("/posts/:postId/delete", loginRequired, v.deletePost)
	app.Post("/posts/:postId/comment", loginRequired, v.createComment)

	app.Get("/follow", loginRequired, v.listFollowedFeed)
	app.Get("/profile/:username/follow", loginRequired, v.followAuthor)
	app.Get("/profile/:username/unfollow", loginRequired, v.unfollowAuthor)
}
