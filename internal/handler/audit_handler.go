package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/services"
)

// AuditHandler exposes the read-only admin views over logs and archives.
type AuditHandler struct {
	query *services.AuditQueryService
}

func NewAuditHandler(query *services.AuditQueryService) *AuditHandler {
	return &AuditHandler{query: query}
}

// GET /api/admin/logs?severity=ERROR&limit=50&offset=0
func (h *AuditHandler) ListLogs(c *gin.Context) {
	limit, offset := paginationParams(c)
	entries, err := h.query.ListLogs(c.Request.Context(), c.Query("severity"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/admin/archives?source=players&limit=50&offset=0
func (h *AuditHandler) ListArchives(c *gin.Context) {
	limit, offset := paginationParams(c)
	records, err := h.query.ListArchives(c.Request.Context(), c.Query("source"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/admin/archives/:source/:id — every snapshot of one document
func (h *AuditHandler) ArchiveHistory(c *gin.Context) {
	records, err := h.query.ArchiveHistory(c.Request.Context(), c.Param("source"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
