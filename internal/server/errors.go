package server

import (
	"context"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// statusFor maps an error to the HTTP status reported to clients.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver), stderrors.Is(err, errors.ErrNoHistory):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrNoPiece),
		stderrors.Is(err, errors.ErrInvalidFEN):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// handleError is the fiber error handler. Every failure is reported as
// {"error": message}.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		s.log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
