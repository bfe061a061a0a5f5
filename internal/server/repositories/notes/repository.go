package notes

import (
	"context"

	"github.com/avolkov/focusboard/internal/server/models"
)

// Repository is the storage contract for sticky notes. Notes support
// create, list and delete only; there is no update.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListAll(ctx context.Context, userID string) ([]*models.Note, error)
	Delete(ctx context.Context, userID, id string) error
}
