package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/geo"
	"github.com/blackmessages/backend/internal/server/config"
	"github.com/blackmessages/backend/internal/server/models"
	"github.com/blackmessages/backend/internal/server/repositories/messages"
)

// MessageService posts ephemeral messages and answers proximity queries.
// Every message gets the same configured TTL; storage hides the row once it
// elapses. There is no delete path and none is needed.
type MessageService struct {
	messages        messages.Repository
	ttl             time.Duration
	defaultRadiusKm float64
	now             func() time.Time
}

func NewMessageService(r messages.Repository, cfg *config.Config) *MessageService {
	return &MessageService{
		messages:        r,
		ttl:             cfg.MessageTTL,
		defaultRadiusKm: cfg.DefaultSearchRadiusKm,
		now:             time.Now,
	}
}

// Create persists a message at the given position. The sender is a free-text
// label, intentionally not tied to an authenticated identity. The timestamp
// is optional; when absent the server clock is used.
func (s *MessageService) Create(ctx context.Context, sender, content string, latitude, longitude float64, timestamp *time.Time) error {
	if sender == "" || content == "" || !finite(latitude) || !finite(longitude) {
		return common.ErrorInvalidInput
	}

	ts := s.now().UTC()
	if timestamp != nil {
		ts = timestamp.UTC()
	}

	msg := &models.Message{
		MessageID: uuid.NewString(),
		Sender:    sender,
		Content:   content,
		Timestamp: ts,
		Latitude:  latitude,
		Longitude: longitude,
	}
	if err := s.messages.Create(ctx, msg, s.ttl); err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// FindNearby returns the currently visible messages inside the bounding box
// derived from the center and radius. The filter is rectangular: points
// inside the box but outside the true radius are included on purpose.
// Ordering is implementation-defined.
func (s *MessageService) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.Message, error) {
	if !finite(latitude) || !finite(longitude) || radiusKm <= 0 {
		return nil, common.ErrorInvalidInput
	}

	box := geo.RangeFromPoint(latitude, longitude, radiusKm)
	result, err := s.messages.FindInBox(ctx, box)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	return result, nil
}

// FindNearbyDefault runs FindNearby with the configured default radius.
func (s *MessageService) FindNearbyDefault(ctx context.Context, latitude, longitude float64) ([]*models.Message, error) {
	return s.FindNearby(ctx, latitude, longitude, s.defaultRadiusKm)
}
