package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type SquadRepository interface {
	Create(ctx context.Context, s *models.Squad) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Squad, error)
	GetAll(ctx context.Context) ([]models.Squad, error)
	Update(ctx context.Context, s *models.Squad) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SquadService struct {
	repo SquadRepository
}

func NewSquadService(repo SquadRepository) *SquadService {
	return &SquadService{repo: repo}
}

func (s *SquadService) Create(ctx context.Context, squad *models.Squad) error {
	if err := validateModel(squad); err != nil {
		return err
	}
	return s.repo.Create(ctx, squad)
}

func (s *SquadService) GetByID(ctx context.Context, id string) (*models.Squad, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *SquadService) GetAll(ctx context.Context) ([]models.Squad, error) {
	return s.repo.GetAll(ctx)
}

func (s *SquadService) Update(ctx context.Context, squad *models.Squad) error {
	if squad.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := validateModel(squad); err != nil {
		return err
	}
	return s.repo.Update(ctx, squad)
}

func (s *SquadService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}
