package reflections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/dbx"
)

// Timestamps are stored as RFC 3339 text.
const timeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, items []models.Reflection) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cached_reflections`); err != nil {
			return fmt.Errorf("failed to clear cached reflections: %w", err)
		}

		for _, it := range items {
			var locked any
			if it.LockedAt != nil {
				locked = it.LockedAt.UTC().Format(timeLayout)
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO cached_reflections
					(id, week_start_date, encrypted_content, is_completed, created_at, updated_at, locked_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, it.ID, it.WeekStartDate.String(), it.EncryptedContent, it.IsCompleted,
				it.CreatedAt.UTC().Format(timeLayout), it.UpdatedAt.UTC().Format(timeLayout), locked)
			if err != nil {
				return fmt.Errorf("failed to cache reflection %s: %w", it.ID, err)
			}
		}
		return nil
	})
}

const selectColumns = `id, week_start_date, encrypted_content, is_completed, created_at, updated_at, locked_at`

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Reflection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM cached_reflections ORDER BY week_start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached reflections: %w", err)
	}
	defer rows.Close()

	var result []models.Reflection
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByWeek(ctx context.Context, weekStart civil.Date) (*models.Reflection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM cached_reflections WHERE week_start_date = ?`, weekStart.String())

	item, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cached_reflections`); err != nil {
		return fmt.Errorf("failed to clear cached reflections: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Reflection, error) {
	var (
		item                   models.Reflection
		week, created, updated string
		locked                 sql.NullString
	)
	if err := s.Scan(&item.ID, &week, &item.EncryptedContent, &item.IsCompleted, &created, &updated, &locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan cached reflection: %w", err)
	}

	var err error
	if item.WeekStartDate, err = civil.ParseDate(week); err != nil {
		return nil, fmt.Errorf("bad cached week %q: %w", week, err)
	}
	if item.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("bad cached created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("bad cached updated_at: %w", err)
	}
	if locked.Valid {
		t, err := time.Parse(timeLayout, locked.String)
		if err != nil {
			return nil, fmt.Errorf("bad cached locked_at: %w", err)
		}
		item.LockedAt = &t
	}
	return &item, nil
}
