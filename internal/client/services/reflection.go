package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/client/repositories/reflections"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/envelope"
	"github.com/dmitrijs2005/weekjournal/internal/reflection"
	"github.com/dmitrijs2005/weekjournal/internal/week"
)

// TimezoneSource yields the IANA zone that week boundaries are computed in.
type TimezoneSource interface {
	Timezone(ctx context.Context) (string, error)
}

// Week is one week as loaded for display or editing.
type Week struct {
	Start   civil.Date
	Locked  bool
	LocksAt time.Time
	// Record and Answers are nil when nothing is stored for the week.
	Record  *models.Reflection
	Answers *reflection.Answers
	// Cached is set when the server was unreachable and the local copy
	// was used instead.
	Cached bool
}

type WeekSummary struct {
	reflection.Summary
	Status reflection.Status
	Cached bool
}

// ReflectionService composes the envelope, the week calendar and the
// remote storage. Saves always go to the server; reads fall back to the
// local cache when the server is unreachable.
type ReflectionService struct {
	client   client.Client
	cache    reflections.Repository
	tz       TimezoneSource
	sealer   *envelope.Sealer
	calendar *week.Calculator
}

func NewReflectionService(c client.Client, db *sql.DB, tz TimezoneSource, sealer *envelope.Sealer, calendar *week.Calculator) *ReflectionService {
	return &ReflectionService{
		client:   c,
		cache:    reflections.NewSQLiteRepository(db),
		tz:       tz,
		sealer:   sealer,
		calendar: calendar,
	}
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageFailure, err)
}

func (s *ReflectionService) CurrentWeek(ctx context.Context) (civil.Date, error) {
	tz, err := s.tz.Timezone(ctx)
	if err != nil {
		return civil.Date{}, err
	}
	return s.calendar.CurrentWeekStart(tz)
}

func checkWeekStart(d civil.Date) error {
	if !d.IsValid() || week.Start(d) != d {
		return fmt.Errorf("%w: %s", common.ErrInvalidWeekStart, d)
	}
	return nil
}

func (s *ReflectionService) lockState(ctx context.Context, weekStart civil.Date) (bool, time.Time, error) {
	tz, err := s.tz.Timezone(ctx)
	if err != nil {
		return false, time.Time{}, err
	}
	locked, err := s.calendar.IsLocked(weekStart, tz)
	if err != nil {
		return false, time.Time{}, err
	}
	at, err := week.LockInstant(weekStart, tz)
	if err != nil {
		return false, time.Time{}, err
	}
	return locked, at, nil
}

// Load fetches and decrypts the week. A week with no record is not an
// error: the result has nil Record and Answers.
func (s *ReflectionService) Load(ctx context.Context, weekStart civil.Date, passphrase string) (*Week, error) {
	if err := checkWeekStart(weekStart); err != nil {
		return nil, err
	}
	locked, locksAt, err := s.lockState(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	w := &Week{Start: weekStart, Locked: locked, LocksAt: locksAt}

	rec, err := s.client.GetReflection(ctx, weekStart)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorNotFound):
		return w, nil
	case errors.Is(err, client.ErrUnavailable):
		w.Cached = true
		rec, err = s.cache.GetByWeek(ctx, weekStart)
		if errors.Is(err, common.ErrorNotFound) {
			return w, nil
		}
		if err != nil {
			return nil, storageFailure(err)
		}
	default:
		return nil, storageFailure(err)
	}

	answers, err := reflection.Open(s.sealer, rec.EncryptedContent, passphrase)
	if err != nil {
		return nil, err
	}
	w.Record = rec
	w.Answers = answers
	return w, nil
}

// Save encrypts the answers under a fresh salt and upserts the week.
// markCompleted needs every question answered.
func (s *ReflectionService) Save(ctx context.Context, weekStart civil.Date, answers *reflection.Answers, passphrase string, markCompleted bool) (*models.Reflection, error) {
	if err := checkWeekStart(weekStart); err != nil {
		return nil, err
	}
	if markCompleted && !answers.Complete() {
		return nil, common.ErrIncompleteReflection
	}

	locked, _, err := s.lockState(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, common.ErrWeekLocked
	}

	blob, err := reflection.Seal(s.sealer, answers, passphrase)
	if err != nil {
		return nil, err
	}

	rec, err := s.client.SaveReflection(ctx, weekStart, blob, markCompleted)
	if errors.Is(err, common.ErrWeekLocked) {
		return nil, common.ErrWeekLocked
	}
	if err != nil {
		return nil, storageFailure(err)
	}
	return rec, nil
}

// List returns every stored week, newest first, with its live status.
// A successful listing also refreshes the offline cache.
func (s *ReflectionService) List(ctx context.Context) ([]WeekSummary, error) {
	tz, err := s.tz.Timezone(ctx)
	if err != nil {
		return nil, err
	}

	cached := false
	items, err := s.client.ListReflections(ctx, true)
	switch {
	case err == nil:
		if err := s.cache.ReplaceAll(ctx, items); err != nil {
			return nil, storageFailure(err)
		}
	case errors.Is(err, client.ErrUnavailable):
		cached = true
		if items, err = s.cache.List(ctx); err != nil {
			return nil, storageFailure(err)
		}
	default:
		return nil, storageFailure(err)
	}

	result := make([]WeekSummary, 0, len(items))
	for _, it := range items {
		locked, err := s.calendar.IsLocked(it.WeekStartDate, tz)
		if err != nil {
			return nil, err
		}
		sum := reflection.Summary{
			ID:            it.ID,
			WeekStartDate: it.WeekStartDate,
			IsCompleted:   it.IsCompleted,
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
			LockedAt:      it.LockedAt,
		}
		result = append(result, WeekSummary{
			Summary: sum,
			Status:  reflection.StatusOf(locked, &sum),
			Cached:  cached,
		})
	}
	return result, nil
}

func (s *ReflectionService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteReflection(ctx, id); err != nil {
		return storageFailure(err)
	}
	return nil
}

func (s *ReflectionService) Restore(ctx context.Context, id string) error {
	if err := s.client.RestoreReflection(ctx, id); err != nil {
		return storageFailure(err)
	}
	return nil
}

// VerifyPassphrase trial-decrypts the newest stored week. With nothing
// stored there is nothing to check against and any passphrase is accepted.
func (s *ReflectionService) VerifyPassphrase(ctx context.Context, passphrase string) error {
	items, err := s.client.ListReflections(ctx, true)
	if errors.Is(err, client.ErrUnavailable) {
		items, err = s.cache.List(ctx)
	}
	if err != nil {
		return storageFailure(err)
	}
	if len(items) == 0 {
		return nil
	}

	newest := items[0]
	for _, it := range items[1:] {
		if it.WeekStartDate.After(newest.WeekStartDate) {
			newest = it
		}
	}
	_, err = reflection.Open(s.sealer, newest.EncryptedContent, passphrase)
	return err
}
