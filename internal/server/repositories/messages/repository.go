package messages

import (
	"context"
	"time"

	"github.com/blackmessages/backend/internal/geo"
	"github.com/blackmessages/backend/internal/server/models"
)

type Repository interface {
	// Create persists the message with the given time-to-live. After ttl
	// elapses the row stops appearing in any query.
	Create(ctx context.Context, msg *models.Message, ttl time.Duration) error

	// FindInBox returns all currently visible messages whose coordinates
	// fall inside the box. Ordering is implementation-defined.
	FindInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Message, error)
}
