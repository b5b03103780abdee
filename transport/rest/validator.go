package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// board sizes must split into two equal halves around the center
	if err := v.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}); err != nil {
		panic(fmt.Errorf("failed to register validation: %w", err))
	}

	return v
}

// parseBody - decodes the JSON body into dst and validates it. An empty body leaves dst untouched.
func parseBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(dst); err != nil {
			return fmt.Errorf("%w: %s", apperror.ErrInvalidRequest, err.Error())
		}
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: %s", apperror.ErrInvalidRequest, err.Error())
		}

		return fmt.Errorf("%w: %s", apperror.ErrInvalidRequest, describe(validationErrors))
	}

	return nil
}

func describe(errs validator.ValidationErrors) string {
	var details strings.Builder

	for _, err := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}

		switch err.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", err.Field())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", err.Field(), err.Param())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", err.Field(), err.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", err.Field(), err.Param())
		case "even":
			fmt.Fprintf(&details, "%s must be even", err.Field())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", err.Field(), err.Tag())
		}
	}

	return details.String()
}
