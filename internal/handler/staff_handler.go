package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type StaffHandler struct {
	service *services.StaffService
	audit   *services.AuditService
}

func NewStaffHandler(service *services.StaffService, audit *services.AuditService) *StaffHandler {
	return &StaffHandler{service: service, audit: audit}
}

// GET /api/staff
func (h *StaffHandler) GetAll(c *gin.Context) {
	staff, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GET /api/staff/:id
func (h *StaffHandler) GetByID(c *gin.Context) {
	member, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// POST /api/staff
func (h *StaffHandler) Create(c *gin.Context) {
	member := new(models.Staff)
	if err := c.ShouldBindJSON(member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), member); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// PUT /api/staff/:id (previous version archived first)
func (h *StaffHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	member := new(models.Staff)
	if err := c.ShouldBindJSON(member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceStaff, "staff updated", actor)

	if err := h.service.Update(ctx, member); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "staff updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"staff_id": id},
	})

	c.JSON(http.StatusOK, member)
}

// DELETE /api/staff/:id (archived first)
func (h *StaffHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	member, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, member, member.ID, models.SourceStaff, "staff deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "staff deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"staff_id": id},
	})

	c.Status(http.StatusNoContent)
}
