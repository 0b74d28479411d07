package localizations

import (
	"context"

	"github.com/blackmessages/backend/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, loc *models.Localization) error
	Get(ctx context.Context, deviceID string) (*models.Localization, error)
}
