package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
	"club-app/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) error
	SetBanStatus(ctx context.Context, id primitive.ObjectID, banned bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserService struct {
	repo UserRepository
	jwt  *utils.JWTUtil
}

func NewUserService(repo UserRepository, jwt *utils.JWTUtil) *UserService {
	return &UserService{repo: repo, jwt: jwt}
}

func (s *UserService) Create(ctx context.Context, u *models.User, password string) error {
	if !u.Role.IsValid() {
		return models.ErrValidation
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hash
	return s.repo.Create(ctx, u)
}

// Login verifies credentials and issues a signed token. Banned users cannot
// log in.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Banned {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID.Hex(), user.Name, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *UserService) GetAll(ctx context.Context, role models.Role) ([]models.User, error) {
	return s.repo.GetAll(ctx, role)
}

func (s *UserService) ChangeRole(ctx context.Context, id string, role models.Role) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	if !role.IsValid() {
		return models.ErrValidation
	}
	return s.repo.UpdateRole(ctx, objID, role)
}

func (s *UserService) SetBanStatus(ctx context.Context, id string, banned bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.SetBanStatus(ctx, objID, banned)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}
