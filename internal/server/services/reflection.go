package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/envelope"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/dmitrijs2005/weekjournal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

// ReflectionService stores encrypted reflections and enforces the weekly
// lock using the timezone saved in the user's profile.
type ReflectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	calendar    *week.Calculator
}

func NewReflectionService(db *sql.DB, m repomanager.RepositoryManager, calendar *week.Calculator) *ReflectionService {
	return &ReflectionService{db: db, repomanager: m, calendar: calendar}
}

// Save upserts the reflection for weekStart. Locked weeks are rejected with
// common.ErrWeekLocked and content must be a well-formed envelope.
func (s *ReflectionService) Save(ctx context.Context, userID string, weekStart civil.Date, content string, completed bool) (*models.Reflection, error) {
	if weekStart != week.Start(weekStart) {
		return nil, fmt.Errorf("%w: %s is not a Sunday", common.ErrInvalidWeekStart, weekStart)
	}
	if _, err := envelope.Inspect(content); err != nil {
		return nil, err
	}

	tz, err := timezone(ctx, s.repomanager, s.db, userID)
	if err != nil {
		return nil, err
	}
	locked, err := s.calendar.IsLocked(weekStart, tz)
	if err != nil {
		return nil, err
	}
	if locked {
		lockedSavesRejected.Inc()
		return nil, common.ErrWeekLocked
	}

	r, err := s.repomanager.Reflections(s.db).Upsert(ctx, &models.Reflection{
		UserID:           userID,
		WeekStartDate:    weekStart,
		EncryptedContent: content,
		IsCompleted:      completed,
	})
	if err != nil {
		return nil, fmt.Errorf("error saving reflection: %w", err)
	}
	reflectionsSaved.WithLabelValues(strconv.FormatBool(completed)).Inc()
	return r, nil
}

// Get returns the reflection for weekStart or common.ErrorNotFound.
func (s *ReflectionService) Get(ctx context.Context, userID string, weekStart civil.Date) (*models.Reflection, error) {
	r, err := s.repomanager.Reflections(s.db).Get(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	if err := s.stampLocked(ctx, userID, []*models.Reflection{r}); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the user's reflections, newest week first. Rows whose week
// has locked since they were last seen get locked_at stamped.
func (s *ReflectionService) List(ctx context.Context, userID string, withContent bool) ([]*models.Reflection, error) {
	items, err := s.repomanager.Reflections(s.db).ListByUser(ctx, userID, withContent)
	if err != nil {
		return nil, err
	}
	if err := s.stampLocked(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ReflectionService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Reflections(s.db).SoftDelete(ctx, userID, id)
}

func (s *ReflectionService) Restore(ctx context.Context, userID, id string) error {
	return s.repomanager.Reflections(s.db).Restore(ctx, userID, id)
}

func (s *ReflectionService) stampLocked(ctx context.Context, userID string, items []*models.Reflection) error {
	var tz string
	for _, r := range items {
		if r.LockedAt != nil {
			continue
		}
		if tz == "" {
			var err error
			if tz, err = timezone(ctx, s.repomanager, s.db, userID); err != nil {
				return err
			}
		}
		locked, err := s.calendar.IsLocked(r.WeekStartDate, tz)
		if err != nil {
			return err
		}
		if !locked {
			continue
		}
		at := s.calendar.Now().UTC()
		if err := s.repomanager.Reflections(s.db).MarkLocked(ctx, r.ID, at); err != nil {
			return fmt.Errorf("error marking reflection locked: %w", err)
		}
		r.LockedAt = &at
	}
	return nil
}
