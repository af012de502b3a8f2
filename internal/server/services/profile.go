package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func defaultProfile(userID string) *models.Profile {
	return &models.Profile{
		UserID:         userID,
		Timezone:       common.DefaultTimezone,
		EmailReminders: true,
	}
}

// Get returns the user's profile, storing the default one on first access.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	repo := s.repomanager.Profiles(s.db)
	p, err := repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error reading profile: %w", err)
	}
	p, err = repo.Upsert(ctx, defaultProfile(userID))
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	return p, nil
}

// Update replaces the profile. Unknown timezones are rejected with
// common.ErrUnknownTimezone; an empty one is stored as UTC.
func (s *ProfileService) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	if _, err := week.LoadLocation(p.Timezone); err != nil {
		return nil, err
	}
	in := *p
	if in.Timezone == "" {
		in.Timezone = common.DefaultTimezone
	}
	out, err := s.repomanager.Profiles(s.db).Upsert(ctx, &in)
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return out, nil
}

// timezone reads the stored timezone without creating a profile.
func timezone(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB, userID string) (string, error) {
	p, err := m.Profiles(db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.DefaultTimezone, nil
		}
		return "", fmt.Errorf("error reading profile: %w", err)
	}
	return p.Timezone, nil
}
