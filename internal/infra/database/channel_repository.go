package database

import (
	"context"
	"database/sql"
	"errors"

	"birthday_notification_bot/internal/domain/channel"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLChannelRepository struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

var _ channel.Repository = (*SQLChannelRepository)(nil)

func NewSQLChannelRepository(db *sqlx.DB, logger *logrus.Entry) *SQLChannelRepository {
	return &SQLChannelRepository{db: db, logger: logger.WithField("repository", "channel_bindings")}
}

func (r *SQLChannelRepository) Get(ctx context.Context, key channel.Key) (string, bool, error) {
	query := r.db.Rebind(`SELECT destination_id FROM channel_bindings WHERE channel_key = ?`)

	var destinationID string
	err := r.db.GetContext(ctx, &destinationID, query, string(key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, storageFault(r.logger.WithField("channel_key", key), "get channel", err)
	}
	return destinationID, true, nil
}

// Set is a single-statement upsert, atomic at the storage layer.
func (r *SQLChannelRepository) Set(ctx context.Context, key channel.Key, destinationID string) error {
	query := r.db.Rebind(`INSERT INTO channel_bindings (channel_key, destination_id, updated_at)
               VALUES (?, ?, CURRENT_TIMESTAMP)
               ON CONFLICT (channel_key) DO UPDATE
               SET destination_id = excluded.destination_id, updated_at = excluded.updated_at`)
	if _, err := r.db.ExecContext(ctx, query, string(key), destinationID); err != nil {
		return storageFault(r.logger.WithField("channel_key", key), "set channel", err)
	}
	return nil
}
