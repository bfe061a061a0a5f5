package tasks

import (
	"context"
	"time"

	"github.com/avolkov/focusboard/internal/server/models"
)

// Repository is the storage contract for tasks. Every read and mutation is
// scoped by the owning user's id; a foreign id behaves exactly like a
// non-existent one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetOne(ctx context.Context, userID, id string) (*models.Task, error)
	ListAll(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, userID, id string, upd *models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
	CountCreatedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error)
	CountCompletedByDay(ctx context.Context, userID string, since time.Time) ([]*models.TaskCountBucket, error)
}
