// Package devices provides a Cassandra-backed repository for Device rows and
// their rotating transaction keys.
package devices

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

func (r *CassandraRepository) Create(ctx context.Context, device *models.Device) error {
	query := `
		INSERT INTO devices (device_id, transaction_key)
		VALUES (?, ?)
	`
	if err := r.db.Exec(ctx, query, device.DeviceID, device.TransactionKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the device row for the given ID.
// If not found, it returns common.ErrorNotFound.
func (r *CassandraRepository) Get(ctx context.Context, deviceID string) (*models.Device, error) {
	query := `
		SELECT device_id, transaction_key
		FROM devices
		WHERE device_id = ?
	`
	device := &models.Device{}
	err := r.db.ScanRow(ctx, query, []any{&device.DeviceID, &device.TransactionKey}, deviceID)
	if err != nil {
		if errors.Is(err, cqlx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return device, nil
}

// ReplaceTransactionKey overwrites the device's key unconditionally. Any
// previously issued key stops authenticating as soon as the write lands.
func (r *CassandraRepository) ReplaceTransactionKey(ctx context.Context, deviceID, transactionKey string) error {
	query := `
		UPDATE devices
		SET transaction_key = ?
		WHERE device_id = ?
	`
	if err := r.db.Exec(ctx, query, transactionKey, deviceID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
