package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type TrainingHandler struct {
	service *services.TrainingService
}

func NewTrainingHandler(service *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// GET /api/trainings
func (h *TrainingHandler) GetAll(c *gin.Context) {
	trainings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainings)
}

// GET /api/trainings/:id
func (h *TrainingHandler) GetByID(c *gin.Context) {
	training, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

// POST /api/trainings
func (h *TrainingHandler) Create(c *gin.Context) {
	training := new(models.Training)
	if err := c.ShouldBindJSON(training); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), training); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, training)
}

// PUT /api/trainings/:id
func (h *TrainingHandler) Update(c *gin.Context) {
	current, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	training := new(models.Training)
	if err := c.ShouldBindJSON(training); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	training.ID = current.ID

	if err := h.service.Update(c.Request.Context(), training); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

// DELETE /api/trainings/:id
func (h *TrainingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
