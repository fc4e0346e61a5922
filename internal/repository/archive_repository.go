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

// ArchiveRepository is append-only: records are written once and never
// updated or removed by application code.
type ArchiveRepository struct {
	col *mongo.Collection
}

func NewArchiveRepository(db *mongo.Database) *ArchiveRepository {
	return &ArchiveRepository{col: db.Collection("archives")}
}

func (r *ArchiveRepository) Create(ctx context.Context, rec *models.ArchiveRecord) error {
	rec.CreatedAt = time.Now().UTC()

	result, err := r.col.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	rec.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *ArchiveRepository) List(ctx context.Context, source models.SourceCollection, limit, offset int64) ([]models.ArchiveRecord, error) {
	filter := bson.M{}
	if source != "" {
		filter["source_collection"] = source
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

	var records []models.ArchiveRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ArchiveRecord{}
	}
	return records, nil
}

// FindByOriginal returns every snapshot taken of one source document, newest
// first.
func (r *ArchiveRepository) FindByOriginal(ctx context.Context, source models.SourceCollection, originalID primitive.ObjectID) ([]models.ArchiveRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{
		"source_collection": source,
		"original_id":       originalID,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ArchiveRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ArchiveRecord{}
	}
	return records, nil
}
