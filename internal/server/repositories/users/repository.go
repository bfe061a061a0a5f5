package users

import (
	"context"

	"github.com/avolkov/focusboard/internal/server/models"
)

// Repository is the storage contract for user accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, name, avatar *string) (*models.User, error)
}
