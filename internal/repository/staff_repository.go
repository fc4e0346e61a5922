package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"club-app/internal/models"
)

type StaffRepository struct {
	col *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{col: db.Collection("staff")}
}

func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	s.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error) {
	var staff models.Staff
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&staff)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &staff, nil
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]models.Staff, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err = cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []models.Staff{}
	}
	return staff, nil
}

func (r *StaffRepository) Update(ctx context.Context, s *models.Staff) error {
	if s.ID.IsZero() {
		return models.ErrInvalidID
	}

	s.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"first_name": s.FirstName,
		"last_name":  s.LastName,
		"role_title": s.RoleTitle,
		"phone":      s.Phone,
		"email":      s.Email,
		"photo_url":  s.PhotoURL,
		"updated_at": s.UpdatedAt,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": s.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
