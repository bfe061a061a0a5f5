package focussessions

import (
	"context"
	"time"

	"github.com/avolkov/focusboard/internal/server/models"
)

// Repository is the storage contract for the focus-session log. The log is
// append-only: there is deliberately no update or delete.
type Repository interface {
	Create(ctx context.Context, session *models.FocusSession) (*models.FocusSession, error)
	SumDurationByDay(ctx context.Context, userID string, since time.Time) ([]*models.FocusBucket, error)
}
