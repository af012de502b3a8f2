package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/weekjournal/internal/common"
	"github.com/dmitrijs2005/weekjournal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetCreatesDefault(t *testing.T) {
	repo := &fakeProfilesRepo{}
	db, _ := newSQLMockDB(t)
	s := NewProfileService(db, &fakeRepoManager{p: repo})

	p, err := s.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "UTC", p.Timezone)
	assert.True(t, p.EmailReminders)
	assert.False(t, p.PushNotifications)

	_, err = s.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.upserts)
}

func TestProfileService_GetError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewProfileService(db, &fakeRepoManager{p: &fakeProfilesRepo{getErr: errBoom}})

	_, err := s.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, errBoom)
}

func TestProfileService_Update(t *testing.T) {
	repo := &fakeProfilesRepo{}
	db, _ := newSQLMockDB(t)
	s := NewProfileService(db, &fakeRepoManager{p: repo})

	p, err := s.Update(context.Background(), &models.Profile{UserID: "u1", Timezone: "Asia/Tokyo", PushNotifications: true})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", p.Timezone)
	assert.True(t, p.PushNotifications)

	p, err = s.Update(context.Background(), &models.Profile{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", p.Timezone)

	_, err = s.Update(context.Background(), &models.Profile{UserID: "u1", Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, common.ErrUnknownTimezone)
	assert.Equal(t, 2, repo.upserts)
}
