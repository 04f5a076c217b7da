package api

import (
	"github.com/emberlight/chronicle/pkg/internal/models"
	"github.com/emberlight/chronicle/pkg/internal/services"
)

// View contexts handed to the external template layer. Plain structs keep
// the serialized bytes deterministic, which the homepage cache relies on.

type feedContext struct {
	PageObj services.Page[models.Post] `json:"page_obj"`
}

type groupContext struct {
	Group   models.Group               `json:"group"`
	PageObj services.Page[models.Post] `json:"page_obj"`
}

type profileContext struct {
	Author     models.Account             `json:"author"`
	PostsCount int64                      `json:"posts_count"`
	Following  bool                       `json:"following"`
	PageObj    services.Page[models.Post] `json:"page_obj"`
}

type postDetailContext struct {
	Post       models.Post      `json:"post"`
	Comments   []models.Comment `json:"comments"`
	PostsCount int64            `json:"posts_count"`
	Form       formState        `json:"form"`
}

type formState struct {
	Values map[string]string `json:"values"`
	Errors map[string]string `json:"errors"`
}

type postFormContext struct {
	Form   formState `json:"form"`
	IsEdit bool      `json:"is_edit"`
}

type commentFormContext struct {
	Post models.Post `json:"post"`
	Form formState   `json:"form"`
}

func newFormState(values map[string]string) formState {
	if values == nil {
		values = map[string]string{}
	}
	return formState{Values: values, Errors: map[string]string{}}
}
