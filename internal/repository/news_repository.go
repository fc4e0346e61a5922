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

type NewsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{col: db.Collection("news")}
}

func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	n.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.News, error) {
	var news models.News
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&news)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &news, nil
}

func (r *NewsRepository) GetAll(ctx context.Context) ([]models.News, error) {
	return r.find(ctx, bson.M{})
}

func (r *NewsRepository) GetPublished(ctx context.Context) ([]models.News, error) {
	return r.find(ctx, bson.M{"published": true})
}

func (r *NewsRepository) find(ctx context.Context, filter bson.M) ([]models.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.News
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.News{}
	}
	return items, nil
}

func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	if n.ID.IsZero() {
		return models.ErrInvalidID
	}

	n.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":      n.Title,
		"body":       n.Body,
		"cover_url":  n.CoverURL,
		"published":  n.Published,
		"updated_at": n.UpdatedAt,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": n.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
