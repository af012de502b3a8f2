// Package reflections stores encrypted weekly reflections, one row per
// (user, week start). Content is an opaque envelope.
package reflections

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
)

type Repository interface {
	// Upsert inserts r or updates the row for the same user and week in
	// place, clearing its deleted flag. It returns the stored row.
	Upsert(ctx context.Context, r *models.Reflection) (*models.Reflection, error)
	// Get returns the non-deleted reflection for the week or common.ErrorNotFound.
	Get(ctx context.Context, userID string, weekStart civil.Date) (*models.Reflection, error)
	// ListByUser returns non-deleted reflections, newest week first. Content
	// is left empty unless withContent is set.
	ListByUser(ctx context.Context, userID string, withContent bool) ([]*models.Reflection, error)
	SoftDelete(ctx context.Context, userID, id string) error
	Restore(ctx context.Context, userID, id string) error
	// MarkLocked records the first time a reflection was seen locked.
	MarkLocked(ctx context.Context, id string, at time.Time) error
}
