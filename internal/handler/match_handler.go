package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type MatchService interface {
	Create(ctx context.Context, m *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	GetAll(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, m *models.Match) error
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context, id string) (*models.Match, *services.MatchMetrics, error)
	AddGoal(ctx context.Context, matchID string, goal models.GoalEvent) (*models.GoalEvent, error)
	RemoveGoal(ctx context.Context, matchID, goalID string) error
	AddCard(ctx context.Context, matchID string, card models.Card) (*models.Card, error)
	RemoveCard(ctx context.Context, matchID, cardID string) error
	AddInjury(ctx context.Context, matchID string, injury models.Injury) (*models.Injury, error)
	RemoveInjury(ctx context.Context, matchID, injuryID string) error
	SetMVP(ctx context.Context, matchID, playerID string) error
}

type MatchHandler struct {
	service MatchService
	audit   *services.AuditService
}

func NewMatchHandler(service MatchService, audit *services.AuditService) *MatchHandler {
	return &MatchHandler{service: service, audit: audit}
}

// GET /api/matches
func (h *MatchHandler) GetAll(c *gin.Context) {
	matches, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GET /api/matches/:id
func (h *MatchHandler) GetByID(c *gin.Context) {
	match, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// GET /api/matches/:id/stats
func (h *MatchHandler) GetStats(c *gin.Context) {
	match, metrics, err := h.service.GetStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match, "stats": metrics})
}

// POST /api/matches
func (h *MatchHandler) Create(c *gin.Context) {
	match := new(models.Match)
	if err := c.ShouldBindJSON(match); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), match); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:   "match created",
		Actor:   actorFromContext(c),
		Request: requestInfo(c),
		Meta:    map[string]string{"match_id": match.ID.Hex()},
	})

	c.JSON(http.StatusCreated, match)
}

// PUT /api/matches/:id (previous version archived first)
func (h *MatchHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	match := new(models.Match)
	if err := c.ShouldBindJSON(match); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	match.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceMatches, "match updated", actor)

	if err := h.service.Update(ctx, match); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "match updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"match_id": id},
	})

	c.JSON(http.StatusOK, match)
}

// DELETE /api/matches/:id (archived first)
func (h *MatchHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	match, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, match, match.ID, models.SourceMatches, "match deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "match deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"match_id": id},
	})

	c.Status(http.StatusNoContent)
}

// POST /api/matches/:id/goals
func (h *MatchHandler) AddGoal(c *gin.Context) {
	var goal models.GoalEvent
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.AddGoal(c.Request.Context(), c.Param("id"), goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/matches/:id/goals/:goalId
func (h *MatchHandler) RemoveGoal(c *gin.Context) {
	if err := h.service.RemoveGoal(c.Request.Context(), c.Param("id"), c.Param("goalId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/matches/:id/cards
func (h *MatchHandler) AddCard(c *gin.Context) {
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.AddCard(c.Request.Context(), c.Param("id"), card)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/matches/:id/cards/:cardId
func (h *MatchHandler) RemoveCard(c *gin.Context) {
	if err := h.service.RemoveCard(c.Request.Context(), c.Param("id"), c.Param("cardId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/matches/:id/injuries
func (h *MatchHandler) AddInjury(c *gin.Context) {
	var injury models.Injury
	if err := c.ShouldBindJSON(&injury); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.AddInjury(c.Request.Context(), c.Param("id"), injury)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /api/matches/:id/injuries/:injuryId
func (h *MatchHandler) RemoveInjury(c *gin.Context) {
	if err := h.service.RemoveInjury(c.Request.Context(), c.Param("id"), c.Param("injuryId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/matches/:id/mvp
func (h *MatchHandler) SetMVP(c *gin.Context) {
	var input struct {
		PlayerID string `json:"player_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetMVP(c.Request.Context(), c.Param("id"), input.PlayerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mvp set"})
}
