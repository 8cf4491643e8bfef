package database

import (
	"context"

	"birthday_notification_bot/internal/domain/notification"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLRunRepository struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

var _ notification.RunRepository = (*SQLRunRepository)(nil)

func NewSQLRunRepository(db *sqlx.DB, logger *logrus.Entry) *SQLRunRepository {
	return &SQLRunRepository{db: db, logger: logger.WithField("repository", "notification_runs")}
}

func (r *SQLRunRepository) HasRun(ctx context.Context, runDate string) (bool, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM notification_runs WHERE run_date = ?`)

	var count int
	if err := r.db.GetContext(ctx, &count, query, runDate); err != nil {
		return false, storageFault(r.logger.WithField("run_date", runDate), "check run", err)
	}
	return count > 0, nil
}

func (r *SQLRunRepository) MarkRun(ctx context.Context, run *notification.Run) error {
	query := r.db.Rebind(`INSERT INTO notification_runs (run_date, run_id, fired_at)
               VALUES (?, ?, ?)
               ON CONFLICT (run_date) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, run.RunDate, run.RunID, run.FiredAt.UTC()); err != nil {
		return storageFault(r.logger.WithField("run_date", run.RunDate), "mark run", err)
	}
	return nil
}
