package handler

import (
	"innosphere/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New()

// bindAndValidate decodes the request body into out and runs struct
// validation. Both failures surface as 400s with a field hint so the
// front-end can highlight the offending input.
func bindAndValidate(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	if err := validate.Struct(out); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fiber.Map{"fields": fields}, err)
	}
	return nil
}
