// Package users provides a Cassandra-backed repository for User rows,
// keyed by device ID.
package users

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

func (r *CassandraRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (device_id, username, pin_hash)
		VALUES (?, ?, ?)
	`
	if err := r.db.Exec(ctx, query, user.DeviceID, user.Username, user.PinHash); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByDeviceID returns the user owning the given device.
// If not found, it returns common.ErrorNotFound.
func (r *CassandraRepository) GetByDeviceID(ctx context.Context, deviceID string) (*models.User, error) {
	query := `
		SELECT device_id, username, pin_hash
		FROM users
		WHERE device_id = ?
	`
	user := &models.User{}
	err := r.db.ScanRow(ctx, query, []any{&user.DeviceID, &user.Username, &user.PinHash}, deviceID)
	if err != nil {
		if errors.Is(err, cqlx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
