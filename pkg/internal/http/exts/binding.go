package exts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// ValidationError carries field-level messages so handlers can re-render
// the submitted form instead of failing the request outright.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	var parts []string
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	return "invalid form submission: " + strings.Join(parts, "; ")
}

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to parse request body: %v", err))
	}

	if err := validation.Struct(out); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			fields := make(map[string]string, len(fieldErrors))
			for _, item := range fieldErrors {
				fields[strings.ToLower(item.Field())] = fmt.Sprintf("failed on the %s rule", item.Tag())
			}
			return &ValidationError{Fields: fields}
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}
