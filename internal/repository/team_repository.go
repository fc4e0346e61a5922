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

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection("teams")}
}

func (r *TeamRepository) Create(ctx context.Context, t *models.Team) error {
	count, err := r.col.CountDocuments(ctx, bson.M{"name": t.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

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

func (r *TeamRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &team, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// GetClub returns the singleton record flagged as the tracked club.
func (r *TeamRepository) GetClub(ctx context.Context) (*models.Team, error) {
	var team models.Team
	err := r.col.FindOne(ctx, bson.M{"is_club": true}).Decode(&team)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &team, nil
}

// EnsureClub upserts the club record so the singleton exists before the first
// request arrives.
func (r *TeamRepository) EnsureClub(ctx context.Context, name, alias string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"name":       name,
			"alias":      alias,
			"is_club":    true,
			"created_at": now,
		},
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"is_club": true}, update, options.Update().SetUpsert(true))
	return err
}

func (r *TeamRepository) Update(ctx context.Context, t *models.Team) error {
	if t.ID.IsZero() {
		return models.ErrInvalidID
	}

	t.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":       t.Name,
		"alias":      t.Alias,
		"logo_url":   t.LogoURL,
		"community":  t.Community,
		"contact":    t.Contact,
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

func (r *TeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "is_club": bson.M{"$ne": true}})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
