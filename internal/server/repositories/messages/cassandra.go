// Package messages stores ephemeral, location-tagged messages. Expiry is
// enforced by the storage layer itself via CQL TTL, not by application-level
// filtering: once the TTL elapses the row is invisible to every query.
package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/blackmessages/backend/internal/cqlx"
	"github.com/blackmessages/backend/internal/geo"
	"github.com/blackmessages/backend/internal/server/models"
)

type CassandraRepository struct {
	db cqlx.Querier
}

func NewCassandraRepository(db cqlx.Querier) *CassandraRepository {
	return &CassandraRepository{db: db}
}

func (r *CassandraRepository) Create(ctx context.Context, msg *models.Message, ttl time.Duration) error {
	query := `
		INSERT INTO messages (message_id, sender, content, created_at, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?)
		USING TTL ?
	`
	err := r.db.Exec(ctx, query,
		msg.MessageID, msg.Sender, msg.Content, msg.Timestamp,
		msg.Latitude, msg.Longitude, int(ttl.Seconds()))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindInBox selects messages whose coordinates lie within the box, each axis
// checked independently. The store has no geo index, so this is a plain
// range filter over the lat/lon columns.
func (r *CassandraRepository) FindInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Message, error) {
	query := `
		SELECT message_id, sender, content, created_at, latitude, longitude
		FROM messages
		WHERE latitude >= ? AND latitude <= ?
		  AND longitude >= ? AND longitude <= ?
		ALLOW FILTERING
	`
	iter := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)

	var result []*models.Message
	for {
		msg := &models.Message{}
		if !iter.Scan(&msg.MessageID, &msg.Sender, &msg.Content, &msg.Timestamp,
			&msg.Latitude, &msg.Longitude) {
			break
		}
		result = append(result, msg)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
