package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type TeamHandler struct {
	service *services.TeamService
	audit   *services.AuditService
}

func NewTeamHandler(service *services.TeamService, audit *services.AuditService) *TeamHandler {
	return &TeamHandler{service: service, audit: audit}
}

// GET /api/teams/club
func (h *TeamHandler) GetClub(c *gin.Context) {
	club, err := h.service.GetClub(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// GET /api/teams
func (h *TeamHandler) GetAll(c *gin.Context) {
	teams, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GET /api/teams/:id
func (h *TeamHandler) GetByID(c *gin.Context) {
	team, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// POST /api/teams
func (h *TeamHandler) Create(c *gin.Context) {
	team := new(models.Team)
	if err := c.ShouldBindJSON(team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), team); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// PUT /api/teams/:id (previous version archived first)
func (h *TeamHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	team := new(models.Team)
	if err := c.ShouldBindJSON(team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	team.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceTeams, "team updated", actor)

	if err := h.service.Update(ctx, team); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "team updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"team_id": id},
	})

	c.JSON(http.StatusOK, team)
}

// DELETE /api/teams/:id (archived first; the club record is protected)
func (h *TeamHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	team, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, team, team.ID, models.SourceTeams, "team deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "team deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"team_id": id},
	})

	c.Status(http.StatusNoContent)
}
