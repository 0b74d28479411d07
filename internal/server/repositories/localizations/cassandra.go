// Package localizations stores the single current position per device.
package localizations

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackmessages/backend/internal/common"
	"github.com/blackmessages/backend/internal/cqlx"
	"github.com/blackmessages/backend/internal/server/models"
)

type CassandraRepository struct {
	db cqlx.Querier
}

func NewCassandraRepository(db cqlx.Querier) *CassandraRepository {
	return &CassandraRepository{db: db}
}

// Upsert writes the device's current position. CQL inserts are upserts on the
// partition key, so one row per device survives concurrent writers and the
// last write wins. No read-before-write is performed.
func (r *CassandraRepository) Upsert(ctx context.Context, loc *models.Localization) error {
	query := `
		INSERT INTO current_localizations (device_id, latitude, longitude, updated_at)
		VALUES (?, ?, ?, ?)
	`
	if err := r.db.Exec(ctx, query, loc.DeviceID, loc.Latitude, loc.Longitude, loc.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the device's current position.
// If the device has never reported one, it returns common.ErrorNotFound.
func (r *CassandraRepository) Get(ctx context.Context, deviceID string) (*models.Localization, error) {
	query := `
		SELECT device_id, latitude, longitude, updated_at
		FROM current_localizations
		WHERE device_id = ?
	`
	loc := &models.Localization{}
	err := r.db.ScanRow(ctx, query,
		[]any{&loc.DeviceID, &loc.Latitude, &loc.Longitude, &loc.UpdatedAt}, deviceID)
	if err != nil {
		if errors.Is(err, cqlx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return loc, nil
}
