package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"club-app/internal/models"
	"club-app/internal/services"
)

type UserHandler struct {
	users *services.UserService
	audit *services.AuditService
}

func NewUserHandler(users *services.UserService, audit *services.AuditService) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

// GET /api/users?role=manager
func (h *UserHandler) GetAll(c *gin.Context) {
	role := models.RoleAll
	if raw := c.Query("role"); raw != "" {
		role = models.Role(raw)
		if !role.IsValid() {
			respondError(c, fmt.Errorf("%w: unknown role %q", models.ErrValidation, raw))
			return
		}
	}

	users, err := h.users.GetAll(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// POST /api/users (admin only)
func (h *UserHandler) Create(c *gin.Context) {
	var input struct {
		Email    string      `json:"email"    binding:"required,email"`
		Name     string      `json:"name"     binding:"required"`
		Password string      `json:"password" binding:"required,min=8"`
		Role     models.Role `json:"role"     binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{Email: input.Email, Name: input.Name, Role: input.Role}
	if err := h.users.Create(c.Request.Context(), &user, input.Password); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:       "user created",
		Description: "account " + user.Email + " created with role " + string(user.Role),
		Actor:       actorFromContext(c),
		Request:     requestInfo(c),
		Meta:        map[string]string{"user_id": user.ID.Hex()},
	})

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

// PUT /api/users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var input struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.users.ChangeRole(c.Request.Context(), id, input.Role); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(c.Request.Context(), services.LogParams{
		Title:    "user role changed",
		Severity: models.SeverityWarning,
		Actor:    actorFromContext(c),
		Request:  requestInfo(c),
		Meta:     map[string]string{"user_id": id, "new_role": string(input.Role)},
	})

	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// PUT /api/users/:id/ban and /api/users/:id/unban
func (h *UserHandler) SetBanStatus(banned bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.users.SetBanStatus(c.Request.Context(), id, banned); err != nil {
			respondError(c, err)
			return
		}

		title := "user unbanned"
		if banned {
			title = "user banned"
		}
		h.audit.LogAction(c.Request.Context(), services.LogParams{
			Title:    title,
			Severity: models.SeverityWarning,
			Actor:    actorFromContext(c),
			Request:  requestInfo(c),
			Meta:     map[string]string{"user_id": id},
		})

		c.JSON(http.StatusOK, gin.H{"message": title})
	}
}

// DELETE /api/users/:id (admin only, archived first)
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	actor := actorFromContext(c)
	h.audit.ArchiveBeforeMutate(ctx, user, user.ID, models.SourceUsers, "user deleted", actor)

	if err := h.users.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogAction(ctx, services.LogParams{
		Title:       "user deleted",
		Description: "account " + user.Email + " removed",
		Severity:    models.SeverityWarning,
		Actor:       actor,
		Request:     requestInfo(c),
		Meta:        map[string]string{"user_id": id},
	})

	c.Status(http.StatusNoContent)
}
