package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type TeamRepository interface {
	Create(ctx context.Context, t *models.Team) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	GetClub(ctx context.Context) (*models.Team, error)
	EnsureClub(ctx context.Context, name, alias string) error
	Update(ctx context.Context, t *models.Team) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TeamService struct {
	repo TeamRepository
}

func NewTeamService(repo TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// EnsureClub seeds the tracked club's singleton record on startup.
func (s *TeamService) EnsureClub(ctx context.Context, name, alias string) error {
	return s.repo.EnsureClub(ctx, name, alias)
}

func (s *TeamService) GetClub(ctx context.Context) (*models.Team, error) {
	return s.repo.GetClub(ctx)
}

func (s *TeamService) Create(ctx context.Context, t *models.Team) error {
	if err := validateModel(t); err != nil {
		return err
	}
	// Opponents only: the club record is seeded once at startup.
	t.IsClub = false
	return s.repo.Create(ctx, t)
}

func (s *TeamService) GetByID(ctx context.Context, id string) (*models.Team, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *TeamService) GetAll(ctx context.Context) ([]models.Team, error) {
	return s.repo.GetAll(ctx)
}

func (s *TeamService) Update(ctx context.Context, t *models.Team) error {
	if t.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := validateModel(t); err != nil {
		return err
	}
	return s.repo.Update(ctx, t)
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}
