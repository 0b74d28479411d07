package devices

import (
	"context"

	"github.com/blackmessages/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, device *models.Device) error
	Get(ctx context.Context, deviceID string) (*models.Device, error)
	ReplaceTransactionKey(ctx context.Context, deviceID, transactionKey string) error
}
