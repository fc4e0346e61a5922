package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type TrainingRepository interface {
	Create(ctx context.Context, t *models.Training) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Training, error)
	GetAll(ctx context.Context) ([]models.Training, error)
	Update(ctx context.Context, t *models.Training) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TrainingService struct {
	repo TrainingRepository
}

func NewTrainingService(repo TrainingRepository) *TrainingService {
	return &TrainingService{repo: repo}
}

func (s *TrainingService) Create(ctx context.Context, t *models.Training) error {
	return s.repo.Create(ctx, t)
}

func (s *TrainingService) GetByID(ctx context.Context, id string) (*models.Training, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *TrainingService) GetAll(ctx context.Context) ([]models.Training, error) {
	return s.repo.GetAll(ctx)
}

func (s *TrainingService) Update(ctx context.Context, t *models.Training) error {
	if t.ID.IsZero() {
		return models.ErrInvalidID
	}
	return s.repo.Update(ctx, t)
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}
