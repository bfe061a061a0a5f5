package http

import (
	"net/http"

	"github.com/avolkov/focusboard/internal/server/services"
	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for bucket dates.
const dateLayout = "2006-01-02"

// RecordFocusRequest is the body of POST /focus.
type RecordFocusRequest struct {
	Duration int `json:"duration"`
}

// The summary entries mirror the shapes the dashboard consumes: focus
// buckets keyed by "date", task buckets keyed by "createdAt", with the
// aggregate value nested under "_sum" / "_count".

type DurationSum struct {
	Duration int `json:"duration"`
}

type FocusEntry struct {
	Date string      `json:"date"`
	Sum  DurationSum `json:"_sum"`
}

type CompletedCount struct {
	Completed int `json:"completed"`
}

type CompletedEntry struct {
	CreatedAt string         `json:"createdAt"`
	Count     CompletedCount `json:"_count"`
}

type CreatedCount struct {
	Created int `json:"created"`
}

type CreatedEntry struct {
	CreatedAt string       `json:"createdAt"`
	Count     CreatedCount `json:"_count"`
}

// SummaryResponse is the body of GET /focus. All three series are sparse:
// a day with no rows has no entry.
type SummaryResponse struct {
	FocusData      []FocusEntry     `json:"focusData"`
	TasksCompleted []CompletedEntry `json:"tasksCompleted"`
	TasksCreated   []CreatedEntry   `json:"tasksCreated"`
}

// TodayResponse is the body of GET /focus/today. Sessions is derived from
// total duration, not counted.
type TodayResponse struct {
	FocusSeconds   int `json:"focusSeconds"`
	Sessions       int `json:"sessions"`
	TasksCompleted int `json:"tasksCompleted"`
}

func (s *Server) handleRecordFocus(c echo.Context) error {
	var req RecordFocusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	session, err := s.focus.Record(c.Request().Context(), currentUserID(c), req.Duration)
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

func (s *Server) handleSummary(c echo.Context) error {
	summary, err := s.focus.Summary(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func (s *Server) handleToday(c echo.Context) error {
	stats, err := s.focus.Today(c.Request().Context(), currentUserID(c))
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, TodayResponse{
		FocusSeconds:   stats.FocusSeconds,
		Sessions:       stats.Sessions,
		TasksCompleted: stats.TasksCompleted,
	})
}

func toSummaryResponse(summary *services.Summary) SummaryResponse {
	resp := SummaryResponse{
		FocusData:      make([]FocusEntry, 0, len(summary.FocusData)),
		TasksCompleted: make([]CompletedEntry, 0, len(summary.TasksCompleted)),
		TasksCreated:   make([]CreatedEntry, 0, len(summary.TasksCreated)),
	}
	for _, b := range summary.FocusData {
		resp.FocusData = append(resp.FocusData, FocusEntry{
			Date: b.Date.UTC().Format(dateLayout),
			Sum:  DurationSum{Duration: b.Duration},
		})
	}
	for _, b := range summary.TasksCompleted {
		resp.TasksCompleted = append(resp.TasksCompleted, CompletedEntry{
			CreatedAt: b.Date.UTC().Format(dateLayout),
			Count:     CompletedCount{Completed: b.Count},
		})
	}
	for _, b := range summary.TasksCreated {
		resp.TasksCreated = append(resp.TasksCreated, CreatedEntry{
			CreatedAt: b.Date.UTC().Format(dateLayout),
			Count:     CreatedCount{Created: b.Count},
		})
	}
	return resp
}
