package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type StaffRepository interface {
	Create(ctx context.Context, s *models.Staff) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error)
	GetAll(ctx context.Context) ([]models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type StaffService struct {
	repo StaffRepository
}

func NewStaffService(repo StaffRepository) *StaffService {
	return &StaffService{repo: repo}
}

func (s *StaffService) Create(ctx context.Context, staff *models.Staff) error {
	if err := validateModel(staff); err != nil {
		return err
	}
	return s.repo.Create(ctx, staff)
}

func (s *StaffService) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *StaffService) GetAll(ctx context.Context) ([]models.Staff, error) {
	return s.repo.GetAll(ctx)
}

func (s *StaffService) Update(ctx context.Context, staff *models.Staff) error {
	if staff.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := validateModel(staff); err != nil {
		return err
	}
	return s.repo.Update(ctx, staff)
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}
