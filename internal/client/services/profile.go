package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

// ProfileService reads and updates the server profile and remembers the
// timezone locally, so week boundaries still work offline.
type ProfileService struct {
	client client.Client
	meta   metadata.Repository
}

func NewProfileService(c client.Client, db *sql.DB) *ProfileService {
	return &ProfileService{client: c, meta: metadata.NewSQLiteRepository(db)}
}

func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	p, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	if err := s.remember(ctx, p.Timezone); err != nil {
		return nil, err
	}
	return p, nil
}

// Update rejects unknown timezones before calling the server.
func (s *ProfileService) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if _, err := week.LoadLocation(p.Timezone); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateProfile(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	if err := s.remember(ctx, updated.Timezone); err != nil {
		return nil, err
	}
	return updated, nil
}

// Timezone prefers the server profile and falls back to the cached value
// when the server is unreachable, then to UTC.
func (s *ProfileService) Timezone(ctx context.Context) (string, error) {
	p, err := s.Get(ctx)
	if err == nil {
		return p.Timezone, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return "", err
	}

	v, err := s.meta.Get(ctx, metadata.KeyTimezone)
	if errors.Is(err, common.ErrorNotFound) {
		return common.DefaultTimezone, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	return string(v), nil
}

func (s *ProfileService) remember(ctx context.Context, tz string) error {
	if err := s.meta.Set(ctx, metadata.KeyTimezone, []byte(tz)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
	}
	return nil
}
