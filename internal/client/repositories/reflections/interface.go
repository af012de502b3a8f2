// Package reflections keeps a read-only local copy of the user's encrypted
// reflections so they can be viewed without a connection. The copy is
// replaced wholesale after every successful listing from the server.
package reflections

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
)

type Repository interface {
	ReplaceAll(ctx context.Context, items []models.Reflection) error
	List(ctx context.Context) ([]models.Reflection, error)
	// GetByWeek returns common.ErrorNotFound when the week is not cached.
	GetByWeek(ctx context.Context, weekStart civil.Date) (*models.Reflection, error)
	Clear(ctx context.Context) error
}
