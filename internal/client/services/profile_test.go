package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/weekjournal/internal/client/client"
	"github.com/dmitrijs2005/weekjournal/internal/client/models"
	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetCachesTimezone(t *testing.T) {
	db := setupDB(t)
	fc := newFakeClient()
	fc.profile = models.Profile{Timezone: "Asia/Tokyo", EmailReminders: true}
	svc := NewProfileService(fc, db)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", p.Timezone)
	require.Equal(t, []byte("Asia/Tokyo"), getMeta(t, db, "timezone"))
}

func TestProfile_Update(t *testing.T) {
	db := setupDB(t)
	fc := newFakeClient()
	svc := NewProfileService(fc, db)

	p, err := svc.Update(context.Background(), &models.Profile{Timezone: "Europe/Riga", PushNotifications: true})
	require.NoError(t, err)
	require.Equal(t, "Europe/Riga", p.Timezone)
	require.Equal(t, "Europe/Riga", fc.profile.Timezone)
	require.Equal(t, []byte("Europe/Riga"), getMeta(t, db, "timezone"))

	_, err = svc.Update(context.Background(), &models.Profile{Timezone: "Mars/Olympus"})
	require.ErrorIs(t, err, common.ErrUnknownTimezone)
	require.Equal(t, "Europe/Riga", fc.profile.Timezone, "server not called")

	fc.unavailable = true
	_, err = svc.Update(context.Background(), &models.Profile{Timezone: "UTC"})
	require.ErrorIs(t, err, common.ErrStorageFailure)
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestProfile_TimezoneFallbacks(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	fc := newFakeClient()
	svc := NewProfileService(fc, db)

	fc.unavailable = true
	tz, err := svc.Timezone(ctx)
	require.NoError(t, err)
	require.Equal(t, common.DefaultTimezone, tz, "nothing cached yet")

	fc.unavailable = false
	fc.profile.Timezone = "Asia/Tokyo"
	tz, err = svc.Timezone(ctx)
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", tz)

	fc.unavailable = true
	tz, err = svc.Timezone(ctx)
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", tz, "served from cache")

	fc.unavailable = false
	fc.err = common.ErrorUnauthorized
	_, err = svc.Timezone(ctx)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	require.ErrorIs(t, err, common.ErrStorageFailure)
}
