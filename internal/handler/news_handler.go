package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type NewsHandler struct {
	service *services.NewsService
	audit   *services.AuditService
}

func NewNewsHandler(service *services.NewsService, audit *services.AuditService) *NewsHandler {
	return &NewsHandler{service: service, audit: audit}
}

// GET /api/news (public, published only, cached)
func (h *NewsHandler) GetPublished(c *gin.Context) {
	items, err := h.service.GetPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/news/all (editor+)
func (h *NewsHandler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/news/:id
func (h *NewsHandler) GetByID(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/news
func (h *NewsHandler) Create(c *gin.Context) {
	item := new(models.News)
	if err := c.ShouldBindJSON(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), item); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:   "news created",
		Actor:   actorFromContext(c),
		Request: requestInfo(c),
		Meta:    map[string]string{"news_id": item.ID.Hex()},
	})

	c.JSON(http.StatusCreated, item)
}

// PUT /api/news/:id (previous version archived first)
func (h *NewsHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	item := new(models.News)
	if err := c.ShouldBindJSON(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceNews, "news updated", actor)

	if err := h.service.Update(ctx, item); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "news updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"news_id": id},
	})

	c.JSON(http.StatusOK, item)
}

// DELETE /api/news/:id (archived first)
func (h *NewsHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, item, item.ID, models.SourceNews, "news deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "news deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"news_id": id},
	})

	c.Status(http.StatusNoContent)
}
