package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type fakeArchiveStore struct {
	records []*models.ArchiveRecord
	err     error
}

func (f *fakeArchiveStore) Create(_ context.Context, rec *models.ArchiveRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

type fakeLogStore struct {
	entries []*models.LogEntry
	err     error
}

func (f *fakeLogStore) Create(_ context.Context, entry *models.LogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func TestArchiveBeforeMutate(t *testing.T) {
	archives := &fakeArchiveStore{}
	svc := NewAuditService(archives, &fakeLogStore{})

	player := models.Player{ID: primitive.NewObjectID(), FirstName: "Sam", LastName: "Otieno"}
	actor := &models.ActorSnapshot{ID: primitive.NewObjectID(), Name: "admin", Role: models.RoleAdmin}

	outcome := svc.ArchiveBeforeMutate(context.Background(), player, player.ID, models.SourcePlayers, "player removed", actor)

	require.True(t, outcome.Written)
	require.NoError(t, outcome.Err)
	require.Len(t, archives.records, 1)

	rec := archives.records[0]
	assert.Equal(t, models.SourcePlayers, rec.SourceCollection)
	assert.Equal(t, player.ID, rec.OriginalID)
	assert.Equal(t, "player removed", rec.Reason)
	assert.Equal(t, actor, rec.User)
	assert.NotEmpty(t, rec.Doc)
}

func TestArchiveBeforeMutate_StoreFailureDoesNotBlockCaller(t *testing.T) {
	archives := &fakeArchiveStore{err: errors.New("archive store down")}
	svc := NewAuditService(archives, &fakeLogStore{})

	player := models.Player{ID: primitive.NewObjectID()}
	outcome := svc.ArchiveBeforeMutate(context.Background(), player, player.ID, models.SourcePlayers, "cleanup", nil)

	assert.False(t, outcome.Written)
	assert.Error(t, outcome.Err)

	// The primary mutation proceeds untouched regardless of the outcome.
	deleted := false
	primaryDelete := func() error {
		deleted = true
		return nil
	}
	require.NoError(t, primaryDelete())
	assert.True(t, deleted)
}

func TestArchiveBeforeMutate_RejectsUnknownSource(t *testing.T) {
	archives := &fakeArchiveStore{}
	svc := NewAuditService(archives, &fakeLogStore{})

	outcome := svc.ArchiveBeforeMutate(context.Background(), struct{}{}, primitive.NewObjectID(), models.SourceCollection("trophies"), "", nil)

	assert.False(t, outcome.Written)
	assert.Error(t, outcome.Err)
	assert.Empty(t, archives.records)
}

func TestLogAction_WithRequestInfo(t *testing.T) {
	logs := &fakeLogStore{}
	svc := NewAuditService(&fakeArchiveStore{}, logs)

	entry, outcome := svc.LogAction(context.Background(), LogParams{
		Title: "match deleted",
		Actor: &models.ActorSnapshot{Name: "editor", Role: models.RoleEditor},
		Request: &RequestInfo{
			IP:        "10.0.0.7",
			UserAgent: "curl/8.0",
			Method:    "DELETE",
			URL:       "/api/matches/abc",
		},
		Meta: map[string]string{"match": "abc"},
	})

	require.True(t, outcome.Written)
	require.NotNil(t, entry)
	assert.Equal(t, models.SeverityInfo, entry.Severity)
	assert.Equal(t, "DELETE", entry.Meta["method"])
	assert.Equal(t, "/api/matches/abc", entry.Meta["url"])
	assert.Equal(t, "10.0.0.7", entry.Meta["ip"])
	assert.Equal(t, "abc", entry.Meta["match"])
}

func TestLogAction_WithoutRequestInfo(t *testing.T) {
	logs := &fakeLogStore{}
	svc := NewAuditService(&fakeArchiveStore{}, logs)

	entry, outcome := svc.LogAction(context.Background(), LogParams{
		Title:    "nightly cleanup",
		Severity: models.SeverityWarning,
		Meta:     map[string]string{"job": "cleanup"},
	})

	require.True(t, outcome.Written)
	assert.Equal(t, models.SeverityWarning, entry.Severity)
	assert.Equal(t, map[string]string{"job": "cleanup"}, entry.Meta)
	_, hasMethod := entry.Meta["method"]
	assert.False(t, hasMethod)
}

func TestLogAction_StoreFailureResolvesNil(t *testing.T) {
	logs := &fakeLogStore{err: errors.New("log store down")}
	svc := NewAuditService(&fakeArchiveStore{}, logs)

	entry, outcome := svc.LogAction(context.Background(), LogParams{Title: "won't land"})

	assert.Nil(t, entry)
	assert.False(t, outcome.Written)
	assert.Error(t, outcome.Err)
}

func TestLogAction_RejectsUnknownSeverity(t *testing.T) {
	logs := &fakeLogStore{}
	svc := NewAuditService(&fakeArchiveStore{}, logs)

	entry, outcome := svc.LogAction(context.Background(), LogParams{
		Title:    "bad severity",
		Severity: models.Severity("SHOUTING"),
	})

	assert.Nil(t, entry)
	assert.Error(t, outcome.Err)
	assert.Empty(t, logs.entries)
}
