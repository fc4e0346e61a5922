package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"club-app/internal/models"
)

type PlayerRepository struct {
	col *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) *PlayerRepository {
	return &PlayerRepository{col: db.Collection("players")}
}

func (r *PlayerRepository) Create(ctx context.Context, p *models.Player) error {
	// Jersey numbers are unique among active players
	count, err := r.col.CountDocuments(ctx, bson.M{"jersey_number": p.JerseyNumber, "active": true})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Player, error) {
	var player models.Player
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &player, nil
}

func (r *PlayerRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.Player, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var players []models.Player
	if err = cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	if players == nil {
		players = []models.Player{}
	}
	return players, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p *models.Player) error {
	if p.ID.IsZero() {
		return models.ErrInvalidID
	}

	count, err := r.col.CountDocuments(ctx, bson.M{
		"jersey_number": p.JerseyNumber,
		"active":        true,
		"_id":           bson.M{"$ne": p.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	p.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"first_name":    p.FirstName,
		"last_name":     p.LastName,
		"jersey_number": p.JerseyNumber,
		"position":      p.Position,
		"date_of_birth": p.DateOfBirth,
		"active":        p.Active,
		"updated_at":    p.UpdatedAt,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) SetPhotoURL(ctx context.Context, id primitive.ObjectID, url string) error {
	update := bson.M{"$set": bson.M{
		"photo_url":  url,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
