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

// LogRepository is append-only, mirroring the archive store.
type LogRepository struct {
	col *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{col: db.Collection("logs")}
}

func (r *LogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	entry.CreatedAt = time.Now().UTC()

	result, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	entry.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *LogRepository) List(ctx context.Context, severity models.Severity, limit, offset int64) ([]models.LogEntry, error) {
	filter := bson.M{}
	if severity != "" {
		filter["severity"] = severity
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.LogEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}
