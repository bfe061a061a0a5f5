package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileResponse is the body of GET /user. Only non-sensitive fields leave
// the server.
type ProfileResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// UpdateProfileRequest is the body of PUT /user.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// UpdateProfileResponse echoes the updated safe fields.
type UpdateProfileResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *Server) handleGetProfile(c echo.Context) error {
	user, err := s.users.GetByID(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, ProfileResponse{Name: user.Name, Avatar: user.Avatar, Email: user.Email})
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	user, err := s.users.UpdateProfile(c.Request().Context(), currentUserID(c), req.Name, req.Avatar)
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, UpdateProfileResponse{Name: user.Name, Avatar: user.Avatar})
}
