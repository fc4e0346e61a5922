package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
	"club-app/internal/services"
	"club-app/internal/utils"
)

// actorFromContext rebuilds the caller's snapshot from the claims the auth
// middleware stored. Returns nil on unauthenticated routes.
func actorFromContext(c *gin.Context) *models.ActorSnapshot {
	userID := c.GetString(utils.CtxUserID)
	if userID == "" {
		return nil
	}

	snapshot := &models.ActorSnapshot{
		Name:  c.GetString(utils.CtxUserName),
		Email: c.GetString(utils.CtxUserEmail),
		Role:  models.ToRole(c.GetString(utils.CtxUserRole)),
	}
	if objID, err := primitive.ObjectIDFromHex(userID); err == nil {
		snapshot.ID = objID
	}
	return snapshot
}

func requestInfo(c *gin.Context) *services.RequestInfo {
	return &services.RequestInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Method:    c.Request.Method,
		URL:       c.Request.URL.String(),
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// paginationParams parses limit/offset query values with sane bounds.
func paginationParams(c *gin.Context) (limit, offset int64) {
	limit = 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
