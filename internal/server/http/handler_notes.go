package http

import (
	"net/http"

	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/labstack/echo/v4"
)

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	Content string `json:"content"`
	Color   string `json:"color"`
}

func (s *Server) handleListNotes(c echo.Context) error {
	list, err := s.notes.ListAll(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}
	if list == nil {
		list = []*models.Note{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateNote(c echo.Context) error {
	var req CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	note, err := s.notes.Create(c.Request().Context(), currentUserID(c), req.Content, req.Color)
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, note)
}

func (s *Server) handleDeleteNote(c echo.Context) error {
	if err := s.notes.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
}
