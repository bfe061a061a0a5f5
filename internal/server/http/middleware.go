package http

import (
	"net/http"
	"strings"

	"github.com/avolkov/focusboard/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// accessTokenCookie is the cookie carrying the access token for browser
// clients; API clients use the Authorization header instead.
const accessTokenCookie = "access_token"

// userIDContextKey is where requireAuth stores the resolved user id.
const userIDContextKey = "userID"

// requireAuth resolves the caller's identity from the request's session
// evidence and fails closed. The token is verified and the user record is
// loaded on every request; a valid token whose account has vanished is
// treated the same as no token at all. The 401 body never distinguishes
// missing, malformed or expired credentials.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return unauthorized(c)
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return unauthorized(c)
		}

		if _, err := s.users.GetByID(c.Request().Context(), userID); err != nil {
			return unauthorized(c)
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

// extractToken takes the bearer token from the Authorization header, falling
// back to the access-token cookie.
func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

// currentUserID returns the user id stored by requireAuth.
func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
