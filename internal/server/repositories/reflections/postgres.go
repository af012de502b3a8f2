package reflections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
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

const columns = `id, user_id, week_start_date, encrypted_content, is_completed, created_at, updated_at, locked_at`

// dateArg passes a calendar date as UTC midnight, which the driver stores
// as that same DATE.
func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReflection(s scanner) (*models.Reflection, error) {
	var (
		r        models.Reflection
		week     time.Time
		lockedAt sql.NullTime
	)
	if err := s.Scan(&r.ID, &r.UserID, &week, &r.EncryptedContent, &r.IsCompleted, &r.CreatedAt, &r.UpdatedAt, &lockedAt); err != nil {
		return nil, err
	}
	r.WeekStartDate = civil.DateOf(week)
	if lockedAt.Valid {
		t := lockedAt.Time
		r.LockedAt = &t
	}
	return &r, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, in *models.Reflection) (*models.Reflection, error) {
	query := `
		INSERT INTO reflections (user_id, week_start_date, encrypted_content, is_completed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			encrypted_content = EXCLUDED.encrypted_content,
			is_completed = EXCLUDED.is_completed,
			is_deleted = false,
			updated_at = now()
		RETURNING ` + columns

	out, err := scanReflection(r.db.QueryRowContext(ctx, query,
		in.UserID, dateArg(in.WeekStartDate), in.EncryptedContent, in.IsCompleted))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string, weekStart civil.Date) (*models.Reflection, error) {
	query := `
		SELECT ` + columns + `
		FROM reflections
		WHERE user_id = $1 AND week_start_date = $2 AND NOT is_deleted
	`
	out, err := scanReflection(r.db.QueryRowContext(ctx, query, userID, dateArg(weekStart)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, withContent bool) ([]*models.Reflection, error) {
	query := `
		SELECT id, user_id, week_start_date,
			CASE WHEN $2 THEN encrypted_content ELSE '' END,
			is_completed, created_at, updated_at, locked_at
		FROM reflections
		WHERE user_id = $1 AND NOT is_deleted
		ORDER BY week_start_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, withContent)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reflection
	for rows.Next() {
		item, err := scanReflection(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string) error {
	return r.setDeleted(ctx, userID, id, true)
}

func (r *PostgresRepository) Restore(ctx context.Context, userID, id string) error {
	return r.setDeleted(ctx, userID, id, false)
}

func (r *PostgresRepository) setDeleted(ctx context.Context, userID, id string, deleted bool) error {
	query := `
		UPDATE reflections SET is_deleted = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID, deleted)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkLocked(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE reflections SET locked_at = $2 WHERE id = $1 AND locked_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
