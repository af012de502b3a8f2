package client

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) error
	// Logout forgets the session tokens held by the client.
	Logout()
	Ping(ctx context.Context) error

	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)

	SaveReflection(ctx context.Context, weekStart civil.Date, encryptedContent string, completed bool) (*models.Reflection, error)
	GetReflection(ctx context.Context, weekStart civil.Date) (*models.Reflection, error)
	ListReflections(ctx context.Context, withContent bool) ([]models.Reflection, error)
	DeleteReflection(ctx context.Context, id string) error
	RestoreReflection(ctx context.Context, id string) error

	ArchiveUploadURL(ctx context.Context) (key string, url string, err error)
	ArchiveDownloadURL(ctx context.Context, key string) (string, error)
}
