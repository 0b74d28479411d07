package users

import (
	"context"

	"github.com/blackmessages/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByDeviceID(ctx context.Context, deviceID string) (*models.User, error)
}
