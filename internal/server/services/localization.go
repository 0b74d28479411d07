package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/server/models"
	"github.com/blackmessages/backend/internal/server/repositories/localizations"
)

// LocalizationService maintains the single current position per device.
type LocalizationService struct {
	localizations localizations.Repository
	now           func() time.Time
}

func NewLocalizationService(r localizations.Repository) *LocalizationService {
	return &LocalizationService{localizations: r, now: time.Now}
}

// Upsert records the device's position. The timestamp is always
// server-generated at call time, never caller-supplied. The write is a
// native storage upsert: concurrent calls for the same device end with a
// single row holding whichever write landed last.
func (s *LocalizationService) Upsert(ctx context.Context, deviceID string, latitude, longitude float64) error {
	if deviceID == "" || !finite(latitude) || !finite(longitude) {
		return common.ErrorInvalidInput
	}

	loc := &models.Localization{
		DeviceID:  deviceID,
		Latitude:  latitude,
		Longitude: longitude,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.localizations.Upsert(ctx, loc); err != nil {
		return fmt.Errorf("error saving localization: %w", err)
	}
	return nil
}

// Current returns the device's last reported position, or
// common.ErrorNotFound if the device has never reported one.
func (s *LocalizationService) Current(ctx context.Context, deviceID string) (*models.Localization, error) {
	if deviceID == "" {
		return nil, common.ErrorInvalidInput
	}
	return s.localizations.Get(ctx, deviceID)
}
