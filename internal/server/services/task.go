package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/avolkov/focusboard/internal/common"
	"github.com/avolkov/focusboard/internal/server/config"
	"github.com/avolkov/focusboard/internal/server/models"
	"github.com/avolkov/focusboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskUpdateInput carries the optional fields of an update request. A nil
// field is left unchanged. Date is a string so the same value rules apply
// as on create: empty string clears the due date, a date value sets it.
type TaskUpdateInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Date        *string
}

// TaskService implements ownership-scoped task operations. Every call takes
// the authenticated owner's id and passes it down to the repository, where
// it becomes part of the mutation predicate.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// parseDueDate accepts a date-only value ("2006-01-02") or a full RFC 3339
// timestamp, normalizing either to midnight UTC of its calendar day.
func parseDueDate(value string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid date", common.ErrorValidation)
}

// Create validates the title, coerces the optional due date and persists a
// new task owned by userID. Nothing is written when validation fails.
func (s *TaskService) Create(ctx context.Context, userID, title, description, date string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
	}
	if date != "" {
		due, err := parseDueDate(date)
		if err != nil {
			return nil, err
		}
		task.Date = due
	}

	repo := s.repomanager.Tasks(s.db)
	t, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return t, nil
}

// GetOne returns the task only when it belongs to userID; otherwise
// common.ErrorNotFound, identical to a non-existent id.
func (s *TaskService) GetOne(ctx context.Context, userID, id string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.GetOne(ctx, userID, id)
}

// ListAll returns all of the user's tasks, most recent first.
func (s *TaskService) ListAll(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	list, err := repo.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return list, nil
}

// Update mutates only the supplied fields through a single conditional
// statement. An update naming no fields degenerates to an ownership-checked
// read, so the caller still observes NotFound for foreign ids.
func (s *TaskService) Update(ctx context.Context, userID, id string, in *TaskUpdateInput) (*models.Task, error) {
	upd := &models.TaskUpdate{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if in.Date != nil {
		upd.DateSet = true
		if *in.Date != "" {
			due, err := parseDueDate(*in.Date)
			if err != nil {
				return nil, err
			}
			upd.Date = due
		}
	}

	repo := s.repomanager.Tasks(s.db)

	if upd.Title == nil && upd.Description == nil && upd.Completed == nil && !upd.DateSet {
		return repo.GetOne(ctx, userID, id)
	}
	return repo.Update(ctx, userID, id, upd)
}

// Delete removes the task via a single (id, owner)-filtered statement.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, userID, id)
}
