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

type MediaRepository struct {
	galleries  *mongo.Collection
	documents  *mongo.Collection
	highlights *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		galleries:  db.Collection("galleries"),
		documents:  db.Collection("documents"),
		highlights: db.Collection("highlights"),
	}
}

func (r *MediaRepository) CreateGallery(ctx context.Context, g *models.Gallery) error {
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	result, err := r.galleries.InsertOne(ctx, g)
	if err != nil {
		return err
	}
	g.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *MediaRepository) GetGalleryByID(ctx context.Context, id primitive.ObjectID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.galleries.FindOne(ctx, bson.M{"_id": id}).Decode(&gallery)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &gallery, nil
}

func (r *MediaRepository) GetGalleries(ctx context.Context) ([]models.Gallery, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.galleries.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var galleries []models.Gallery
	if err = cursor.All(ctx, &galleries); err != nil {
		return nil, err
	}
	if galleries == nil {
		galleries = []models.Gallery{}
	}
	return galleries, nil
}

func (r *MediaRepository) AddGalleryImage(ctx context.Context, galleryID primitive.ObjectID, img models.GalleryImage) error {
	update := bson.M{
		"$push": bson.M{"images": img},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.galleries.UpdateOne(ctx, bson.M{"_id": galleryID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MediaRepository) DeleteGallery(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.galleries.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MediaRepository) CreateDocument(ctx context.Context, d *models.Document) error {
	d.CreatedAt = time.Now().UTC()

	result, err := r.documents.InsertOne(ctx, d)
	if err != nil {
		return err
	}
	d.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *MediaRepository) GetDocumentByID(ctx context.Context, id primitive.ObjectID) (*models.Document, error) {
	var doc models.Document
	err := r.documents.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &doc, nil
}

func (r *MediaRepository) GetDocuments(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.documents.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	if err = cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	if documents == nil {
		documents = []models.Document{}
	}
	return documents, nil
}

func (r *MediaRepository) DeleteDocument(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.documents.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MediaRepository) CreateHighlight(ctx context.Context, h *models.Highlight) error {
	h.CreatedAt = time.Now().UTC()

	result, err := r.highlights.InsertOne(ctx, h)
	if err != nil {
		return err
	}
	h.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *MediaRepository) GetHighlights(ctx context.Context) ([]models.Highlight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.highlights.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var highlights []models.Highlight
	if err = cursor.All(ctx, &highlights); err != nil {
		return nil, err
	}
	if highlights == nil {
		highlights = []models.Highlight{}
	}
	return highlights, nil
}

func (r *MediaRepository) DeleteHighlight(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.highlights.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
