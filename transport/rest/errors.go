package rest

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
)

const (
	CodeInvalidCoordinate = "INVALID_COORDINATE"
	CodeIllegalMove       = "ILLEGAL_MOVE"
	CodeNoLegalMove       = "NO_LEGAL_MOVE"
	CodeGameFinished      = "GAME_FINISHED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// checked in order, the first match wins
var errorMappings = []errorMapping{
	{reversi.ErrInvalidCoordinate, fiber.StatusBadRequest, CodeInvalidCoordinate},
	{reversi.ErrIllegalMove, fiber.StatusUnprocessableEntity, CodeIllegalMove},
	{service.ErrNoLegalMove, fiber.StatusConflict, CodeNoLegalMove},
	{apperror.ErrGameFinished, fiber.StatusConflict, CodeGameFinished},
	{apperror.ErrGameNotFound, fiber.StatusNotFound, CodeGameNotFound},
	{apperror.ErrInvalidRequest, fiber.StatusBadRequest, CodeInvalidRequest},
	{reversi.ErrInvalidConfiguration, fiber.StatusBadRequest, CodeInvalidRequest},
	{reversi.ErrUnknownLayout, fiber.StatusBadRequest, CodeInvalidRequest},
}

func (that *handlers) errorHandler(c *fiber.Ctx, err error) error {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return c.Status(mapping.status).JSON(ErrorResponse{
				Error:   mapping.target.Error(),
				Code:    mapping.code,
				Details: err.Error(),
			})
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := CodeInternalError
		switch fiberErr.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = CodeInvalidRequest
		}

		return c.Status(fiberErr.Code).JSON(ErrorResponse{
			Error: fiberErr.Message,
			Code:  code,
		})
	}

	that.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal server error",
		Code:  CodeInternalError,
	})
}
