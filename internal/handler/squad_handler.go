package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type SquadHandler struct {
	service *services.SquadService
	audit   *services.AuditService
}

func NewSquadHandler(service *services.SquadService, audit *services.AuditService) *SquadHandler {
	return &SquadHandler{service: service, audit: audit}
}

// GET /api/squads
func (h *SquadHandler) GetAll(c *gin.Context) {
	squads, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, squads)
}

// GET /api/squads/:id
func (h *SquadHandler) GetByID(c *gin.Context) {
	squad, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, squad)
}

// POST /api/squads
func (h *SquadHandler) Create(c *gin.Context) {
	squad := new(models.Squad)
	if err := c.ShouldBindJSON(squad); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), squad); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, squad)
}

// PUT /api/squads/:id (previous version archived first)
func (h *SquadHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	squad := new(models.Squad)
	if err := c.ShouldBindJSON(squad); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	squad.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceSquads, "squad updated", actor)

	if err := h.service.Update(ctx, squad); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "squad updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"squad_id": id},
	})

	c.JSON(http.StatusOK, squad)
}

// DELETE /api/squads/:id (archived first)
func (h *SquadHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	squad, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, squad, squad.ID, models.SourceSquads, "squad deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "squad deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"squad_id": id},
	})

	c.Status(http.StatusNoContent)
}
