package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type SponsorHandler struct {
	service *services.SponsorService
	audit   *services.AuditService
}

func NewSponsorHandler(service *services.SponsorService, audit *services.AuditService) *SponsorHandler {
	return &SponsorHandler{service: service, audit: audit}
}

// GET /api/sponsors
func (h *SponsorHandler) GetAll(c *gin.Context) {
	sponsors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

// GET /api/sponsors/:id
func (h *SponsorHandler) GetByID(c *gin.Context) {
	sponsor, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

// POST /api/sponsors
func (h *SponsorHandler) Create(c *gin.Context) {
	sponsor := new(models.Sponsor)
	if err := c.ShouldBindJSON(sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), sponsor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}

// PUT /api/sponsors/:id (previous version archived first)
func (h *SponsorHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	sponsor := new(models.Sponsor)
	if err := c.ShouldBindJSON(sponsor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sponsor.ID = current.ID

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, current, current.ID, models.SourceSponsors, "sponsor updated", actor)

	if err := h.service.Update(ctx, sponsor); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:   "sponsor updated",
		Actor:   actor,
		Request: requestInfo(c),
		Meta:    map[string]string{"sponsor_id": id},
	})

	c.JSON(http.StatusOK, sponsor)
}

// DELETE /api/sponsors/:id (archived first)
func (h *SponsorHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	sponsor, err := h.service.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, sponsor, sponsor.ID, models.SourceSponsors, "sponsor deleted", actor)

	if err := h.service.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "sponsor deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"sponsor_id": id},
	})

	c.Status(http.StatusNoContent)
}

// POST /api/sponsors/:id/donations
func (h *SponsorHandler) RecordDonation(c *gin.Context) {
	var input struct {
		Amount   int64  `json:"amount"   binding:"required,gt=0"`
		Currency string `json:"currency"`
		Purpose  string `json:"purpose"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sponsor, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	donation := &models.Donation{
		SponsorID: sponsor.ID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Purpose:   input.Purpose,
	}
	if err := h.service.RecordDonation(c.Request.Context(), donation); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:   "donation recorded",
		Actor:   actorFromContext(c),
		Request: requestInfo(c),
		Meta: map[string]string{
			"sponsor_id":  sponsor.ID.Hex(),
			"donation_id": donation.ID.Hex(),
		},
	})

	c.JSON(http.StatusCreated, donation)
}

// GET /api/sponsors/:id/donations
func (h *SponsorHandler) GetDonations(c *gin.Context) {
	donations, err := h.service.GetDonations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}
