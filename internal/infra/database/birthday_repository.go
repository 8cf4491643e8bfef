package database

import (
	"context"
	"fmt"

	"birthday_notification_bot/internal/domain/birthday"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type birthdayRow struct {
	ExternalID  string `db:"external_id"`
	DisplayName string `db:"display_name"`
	Month       int    `db:"month"`
	Day         int    `db:"day"`
}

type SQLBirthdayRepository struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

var _ birthday.Repository = (*SQLBirthdayRepository)(nil)

func NewSQLBirthdayRepository(db *sqlx.DB, logger *logrus.Entry) *SQLBirthdayRepository {
	return &SQLBirthdayRepository{db: db, logger: logger.WithField("repository", "birthdays")}
}

// Upsert inserts the entry; an existing row for the same external ID wins.
func (r *SQLBirthdayRepository) Upsert(ctx context.Context, b *birthday.Birthday) error {
	query := r.db.Rebind(`INSERT INTO birthdays (external_id, display_name, month, day)
               VALUES (?, ?, ?, ?)
               ON CONFLICT (external_id) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, b.ExternalID, b.DisplayName, b.Month, b.Day); err != nil {
		return storageFault(r.logger.WithField("external_id", b.ExternalID), "upsert birthday", err)
	}
	return nil
}

func (r *SQLBirthdayRepository) Delete(ctx context.Context, externalID string) error {
	query := r.db.Rebind(`DELETE FROM birthdays WHERE external_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, externalID); err != nil {
		return storageFault(r.logger.WithField("external_id", externalID), "delete birthday", err)
	}
	return nil
}

func (r *SQLBirthdayRepository) List(ctx context.Context) ([]*birthday.Birthday, error) {
	query := `SELECT external_id, display_name, month, day
               FROM birthdays ORDER BY month, day, id`

	var rows []birthdayRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, storageFault(r.logger, "list birthdays", err)
	}

	birthdays := make([]*birthday.Birthday, 0, len(rows))
	for _, row := range rows {
		birthdays = append(birthdays, &birthday.Birthday{
			ExternalID:  row.ExternalID,
			DisplayName: row.DisplayName,
			Month:       row.Month,
			Day:         row.Day,
		})
	}
	return birthdays, nil
}

// storageFault logs a failed operation and wraps err with ErrStorageFault.
func storageFault(logger *logrus.Entry, op string, err error) error {
	logger.WithError(err).WithField("op", op).Error("Storage operation failed")
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFault, err)
}
