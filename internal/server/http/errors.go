package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/avolkov/focusboard/internal/common"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that return only an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// mapError translates service errors into wire responses. Not-found and
// not-owned arrive as one sentinel and leave as one message; internal causes
// are logged server-side and never echoed to the caller.
func (s *Server) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, common.ErrorConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "an account with this email already exists"})
	default:
		s.logger.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// validationMessage strips the sentinel prefix so the caller sees only the
// field-level message ("title is required").
func validationMessage(err error) string {
	msg := err.Error()
	prefix := common.ErrorValidation.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return common.ErrorValidation.Error()
}
