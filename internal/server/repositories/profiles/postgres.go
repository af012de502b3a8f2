package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, timezone, email_reminders, push_notifications, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&p.UserID, &p.Timezone, &p.EmailReminders, &p.PushNotifications, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, timezone, email_reminders, push_notifications)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			email_reminders = EXCLUDED.email_reminders,
			push_notifications = EXCLUDED.push_notifications,
			updated_at = now()
		RETURNING created_at, updated_at
	`
	out := *p
	err := r.db.QueryRowContext(ctx, query, p.UserID, p.Timezone, p.EmailReminders, p.PushNotifications).
		Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &out, nil
}
