package database

import (
	"context"

	"birthday_notification_bot/internal/domain/admin"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLAdminRepository struct {
	db     *sqlx.DB
	logger *logrus.Entry
}

var _ admin.Repository = (*SQLAdminRepository)(nil)

func NewSQLAdminRepository(db *sqlx.DB, logger *logrus.Entry) *SQLAdminRepository {
	return &SQLAdminRepository{db: db, logger: logger.WithField("repository", "admins")}
}

func (r *SQLAdminRepository) GetAdmins(ctx context.Context, externalUserID string) ([]*admin.Admin, error) {
	query := r.db.Rebind(`SELECT external_user_id FROM admins WHERE external_user_id = ?`)

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, externalUserID); err != nil {
		return nil, storageFault(r.logger.WithField("external_user_id", externalUserID), "get admins", err)
	}

	admins := make([]*admin.Admin, 0, len(ids))
	for _, id := range ids {
		admins = append(admins, &admin.Admin{ExternalUserID: id})
	}
	return admins, nil
}

func (r *SQLAdminRepository) Add(ctx context.Context, externalUserID string) error {
	query := r.db.Rebind(`INSERT INTO admins (external_user_id) VALUES (?)
               ON CONFLICT (external_user_id) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, externalUserID); err != nil {
		return storageFault(r.logger.WithField("external_user_id", externalUserID), "add admin", err)
	}
	return nil
}

func (r *SQLAdminRepository) Remove(ctx context.Context, externalUserID string) error {
	query := r.db.Rebind(`DELETE FROM admins WHERE external_user_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, externalUserID); err != nil {
		return storageFault(r.logger.WithField("external_user_id", externalUserID), "remove admin", err)
	}
	return nil
}
