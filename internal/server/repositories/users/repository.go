package users

import (
	"context"

	"github.com/dmitrijs2005/weekjournal/internal/server/models"
)

type Repository interface {
	// Create stores user and fills its ID. A taken username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
