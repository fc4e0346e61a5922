package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type PlayerHandler struct {
	service *services.PlayerService
	audit   *services.AuditService
}

func NewPlayerHandler(service *services.PlayerService, audit *services.AuditService) *PlayerHandler {
	return &PlayerHandler{service: service, audit: audit}
}

// GET /api/players?active=true
func (h *PlayerHandler) GetAll(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	players, err := h.service.GetAll(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// GET /api/players/:id
func (h *PlayerHandler) GetByID(c *gin.Context) {
	player, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// POST /api/players
func (h *PlayerHandler) Create(c *gin.Context) {
	player := new(models.Player)
	if err := c.ShouldBindJSON(player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), player); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:   "player created",
		Actor:   actorFromContext(c),
		Request: requestInfo(c),
		Meta:    map[string]string{"player_id": player.ID.Hex()},
	})

	c.JSON(http.StatusCreated, player)
}

// PUT /api/players/:id (previous version archived first)
func (h *PlayerHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	player := new(models.Player)
	if err := c.ShouldBindJSON(player); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	player.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourcePlayers, "player updated", actor)

	if err := h.service.Update(ctx, player); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "player updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"player_id": id},
	})

	c.JSON(http.StatusOK, player)
}

// DELETE /api/players/:id (archived first)
func (h *PlayerHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	player, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, player, player.ID, models.SourcePlayers, "player deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "player deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"player_id": id},
	})

	c.Status(http.StatusNoContent)
}

// POST /api/players/:id/photo (multipart form, field "photo")
func (h *PlayerHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.service.UploadPhoto(
		c.Request.Context(),
		c.Param("id"),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
