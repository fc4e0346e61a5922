package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"club-app/internal/models"
)

type SquadRepository struct {
	col *mongo.Collection
}

func NewSquadRepository(db *mongo.Database) *SquadRepository {
	return &SquadRepository{col: db.Collection("squads")}
}

func (r *SquadRepository) Create(ctx context.Context, s *models.Squad) error {
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

func (r *SquadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Squad, error) {
	var squad models.Squad
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&squad)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &squad, nil
}

func (r *SquadRepository) GetAll(ctx context.Context) ([]models.Squad, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var squads []models.Squad
	if err = cursor.All(ctx, &squads); err != nil {
		return nil, err
	}
	if squads == nil {
		squads = []models.Squad{}
	}
	return squads, nil
}

func (r *SquadRepository) Update(ctx context.Context, s *models.Squad) error {
	if s.ID.IsZero() {
		return models.ErrInvalidID
	}

	s.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":        s.Name,
		"season":      s.Season,
		"competition": s.Competition,
		"player_ids":  s.PlayerIDs,
		"updated_at":  s.UpdatedAt,
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

func (r *SquadRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
