package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
	"club-app/internal/services"
)

type stubMatchService struct {
	match   *models.Match
	metrics *services.MatchMetrics
	err     error
	deleted []string
}

func (s *stubMatchService) Create(context.Context, *models.Match) error { return s.err }
func (s *stubMatchService) GetByID(_ context.Context, id string) (*models.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.match, nil
}
func (s *stubMatchService) GetAll(context.Context) ([]models.Match, error) { return nil, s.err }
func (s *stubMatchService) Update(context.Context, *models.Match) error    { return s.err }
func (s *stubMatchService) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}
func (s *stubMatchService) GetStats(_ context.Context, id string) (*models.Match, *services.MatchMetrics, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.match, s.metrics, nil
}
func (s *stubMatchService) AddGoal(context.Context, string, models.GoalEvent) (*models.GoalEvent, error) {
	return nil, s.err
}
func (s *stubMatchService) RemoveGoal(context.Context, string, string) error { return s.err }
func (s *stubMatchService) AddCard(context.Context, string, models.Card) (*models.Card, error) {
	return nil, s.err
}
func (s *stubMatchService) RemoveCard(context.Context, string, string) error { return s.err }
func (s *stubMatchService) AddInjury(context.Context, string, models.Injury) (*models.Injury, error) {
	return nil, s.err
}
func (s *stubMatchService) RemoveInjury(context.Context, string, string) error { return s.err }
func (s *stubMatchService) SetMVP(context.Context, string, string) error       { return s.err }

type memArchiveStore struct {
	records []*models.ArchiveRecord
}

func (m *memArchiveStore) Create(_ context.Context, rec *models.ArchiveRecord) error {
	m.records = append(m.records, rec)
	return nil
}

type memLogStore struct {
	entries []*models.LogEntry
}

func (m *memLogStore) Create(_ context.Context, entry *models.LogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func newTestRouter(h *MatchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/matches/:id/stats", h.GetStats)
	router.DELETE("/api/matches/:id", h.Delete)
	return router
}

func TestGetStats(t *testing.T) {
	club := models.Team{Name: "Club FC", IsClub: true}
	match := &models.Match{
		ID:     primitive.NewObjectID(),
		IsHome: true,
		Goals: []models.GoalEvent{
			{ID: primitive.NewObjectID(), ForClub: true},
			{ID: primitive.NewObjectID(), ForClub: true},
			{ID: primitive.NewObjectID()},
		},
		Opponent: models.Team{Name: "Rovers"},
	}
	metrics := services.ComputeMatchMetrics(match, club)

	svc := &stubMatchService{match: match, metrics: &metrics}
	h := NewMatchHandler(svc, services.NewAuditService(&memArchiveStore{}, &memLogStore{}))
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matches/"+match.ID.Hex()+"/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Stats struct {
			WinStatus string `json:"win_status"`
			Goals     struct {
				Home int `json:"home"`
				Away int `json:"away"`
			} `json:"goals"`
			Teams struct {
				Home models.Team `json:"home"`
				Away models.Team `json:"away"`
			} `json:"teams"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "win", body.Stats.WinStatus)
	assert.Equal(t, 2, body.Stats.Goals.Home)
	assert.Equal(t, 1, body.Stats.Goals.Away)
	assert.Equal(t, "Club FC", body.Stats.Teams.Home.Name)
	assert.Equal(t, "Rovers", body.Stats.Teams.Away.Name)
}

func TestGetStats_NotFound(t *testing.T) {
	svc := &stubMatchService{err: models.ErrNotFound}
	h := NewMatchHandler(svc, services.NewAuditService(&memArchiveStore{}, &memLogStore{}))
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matches/"+primitive.NewObjectID().Hex()+"/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMatch_ArchivesBeforeDeleting(t *testing.T) {
	match := &models.Match{ID: primitive.NewObjectID(), Opponent: models.Team{Name: "Rovers"}}
	svc := &stubMatchService{match: match}
	archives := &memArchiveStore{}
	logs := &memLogStore{}
	h := NewMatchHandler(svc, services.NewAuditService(archives, logs))
	router := newTestRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/matches/"+match.ID.Hex(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.deleted, 1)

	require.Len(t, archives.records, 1)
	assert.Equal(t, models.SourceMatches, archives.records[0].SourceCollection)
	assert.Equal(t, match.ID, archives.records[0].OriginalID)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "match deleted", logs.entries[0].Title)
	assert.Equal(t, models.SeverityWarning, logs.entries[0].Severity)
	assert.Equal(t, "DELETE", logs.entries[0].Meta["method"])
}
