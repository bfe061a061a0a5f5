package http

import (
	"net/http"

	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/services"
	"github.com/labstack/echo/v4"
)

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Absent fields are left
// unchanged; an empty date string clears the due date.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Date        *string `json:"date"`
}

func (s *Server) handleListTasks(c echo.Context) error {
	list, err := s.tasks.ListAll(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}
	if list == nil {
		list = []*models.Task{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	task, err := s.tasks.Create(c.Request().Context(), currentUserID(c), req.Title, req.Description, req.Date)
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleGetTask(c echo.Context) error {
	task, err := s.tasks.GetOne(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	in := &services.TaskUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Date:        req.Date,
	}
	task, err := s.tasks.Update(c.Request().Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	if err := s.tasks.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
