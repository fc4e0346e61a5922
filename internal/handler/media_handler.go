package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type MediaHandler struct {
	service *services.MediaService
	audit   *services.AuditService
}

func NewMediaHandler(service *services.MediaService, audit *services.AuditService) *MediaHandler {
	return &MediaHandler{service: service, audit: audit}
}

// GET /api/galleries
func (h *MediaHandler) GetGalleries(c *gin.Context) {
	galleries, err := h.service.GetGalleries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleries)
}

// GET /api/galleries/:id
func (h *MediaHandler) GetGalleryByID(c *gin.Context) {
	gallery, err := h.service.GetGalleryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gallery)
}

// POST /api/galleries
func (h *MediaHandler) CreateGallery(c *gin.Context) {
	gallery := new(models.Gallery)
	if err := c.ShouldBindJSON(gallery); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CreateGallery(c.Request.Context(), gallery); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

// POST /api/galleries/:id/images (multipart form, field "image")
func (h *MediaHandler) UploadGalleryImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	img, err := h.service.UploadGalleryImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
		c.PostForm("caption"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, img)
}

// DELETE /api/galleries/:id (archived first)
func (h *MediaHandler) DeleteGallery(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	gallery, err := h.service.GetGalleryByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, gallery, gallery.ID, models.SourceGalleries, "gallery deleted", actor)

	if err := h.service.DeleteGallery(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:    "gallery deleted",
		Severity: models.SeverityWarning,
		Actor:    actor,
		Request:  requestInfo(c),
		Meta:     map[string]string{"gallery_id": id},
	})

	c.Status(http.StatusNoContent)
}

// POST /api/documents (multipart form, fields "title" and "file")
func (h *MediaHandler) UploadDocument(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	doc, err := h.service.UploadDocument(
		c.Request.Context(),
		title,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GET /api/documents
func (h *MediaHandler) GetDocuments(c *gin.Context) {
	docs, err := h.service.GetDocuments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DELETE /api/documents/:id
func (h *MediaHandler) DeleteDocument(c *gin.Context) {
	if err := h.service.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/highlights
func (h *MediaHandler) CreateHighlight(c *gin.Context) {
	highlight := new(models.Highlight)
	if err := c.ShouldBindJSON(highlight); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CreateHighlight(c.Request.Context(), highlight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

// GET /api/highlights
func (h *MediaHandler) GetHighlights(c *gin.Context) {
	highlights, err := h.service.GetHighlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, highlights)
}

// DELETE /api/highlights/:id
func (h *MediaHandler) DeleteHighlight(c *gin.Context) {
	if err := h.service.DeleteHighlight(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
