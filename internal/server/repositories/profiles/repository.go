// Package profiles stores per-user journal settings.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/weekjournal/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the user has no profile yet.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Upsert creates or replaces the profile and returns the stored row.
	Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error)
}
