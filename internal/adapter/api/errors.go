package api

import (
	"errors"

	"game-matchmaker/internal/domain/entity"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body for framework-level rejections (bad input, unknown route).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler renders errors that escape a handler. Domain failures never
// reach it; they are already encoded in the 200 body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		code = fiber.StatusUnprocessableEntity
		msg = err.Error()
	case errors.As(err, &fe):
		code = fe.Code
		msg = fe.Message
	}

	return c.Status(code).JSON(ErrorResponse{Detail: msg})
}
