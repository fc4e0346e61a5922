package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
	"club-app/internal/services"
	"club-app/internal/utils"
)

type fakeUserRepo struct {
	listedRole models.Role
	users      []models.User
}

func (f *fakeUserRepo) Create(context.Context, *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, primitive.ObjectID) (*models.User, error) {
	return nil, models.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, models.ErrNotFound
}
func (f *fakeUserRepo) GetAll(_ context.Context, role models.Role) ([]models.User, error) {
	f.listedRole = role
	return f.users, nil
}
func (f *fakeUserRepo) UpdateRole(context.Context, primitive.ObjectID, models.Role) error {
	return nil
}
func (f *fakeUserRepo) SetBanStatus(context.Context, primitive.ObjectID, bool) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, primitive.ObjectID) error             { return nil }

func newUserTestRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewUserService(repo, utils.NewJWTUtil("test-secret", 0))
	h := NewUserHandler(svc, services.NewAuditService(&memArchiveStore{}, &memLogStore{}))

	router := gin.New()
	router.GET("/api/users", h.GetAll)
	return router
}

func TestGetAllUsers_RejectsUnknownRoleFilter(t *testing.T) {
	repo := &fakeUserRepo{}
	router := newUserTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users?role=banana", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.listedRole, "an invalid filter must never reach the store")
}

func TestGetAllUsers_RoleFilter(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{{Name: "m", Role: models.RoleManager}}}
	router := newUserTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users?role=manager", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleManager, repo.listedRole)

	// No filter lists everyone.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleAll, repo.listedRole)
}
