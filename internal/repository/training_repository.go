package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"club-app/internal/models"
)

type TrainingRepository struct {
	col *mongo.Collection
}

func NewTrainingRepository(db *mongo.Database) *TrainingRepository {
	return &TrainingRepository{col: db.Collection("trainings")}
}

func (r *TrainingRepository) Create(ctx context.Context, t *models.Training) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *TrainingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Training, error) {
	var training models.Training
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&training)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &training, nil
}

func (r *TrainingRepository) GetAll(ctx context.Context) ([]models.Training, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainings []models.Training
	if err = cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}
	if trainings == nil {
		trainings = []models.Training{}
	}
	return trainings, nil
}

func (r *TrainingRepository) Update(ctx context.Context, t *models.Training) error {
	if t.ID.IsZero() {
		return models.ErrInvalidID
	}

	t.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"date":       t.Date,
		"location":   t.Location,
		"squad_id":   t.SquadID,
		"attendees":  t.Attendees,
		"notes":      t.Notes,
		"updated_at": t.UpdatedAt,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": t.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *TrainingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
