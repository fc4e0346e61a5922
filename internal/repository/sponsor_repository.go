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

type SponsorRepository struct {
	sponsors  *mongo.Collection
	donations *mongo.Collection
}

func NewSponsorRepository(db *mongo.Database) *SponsorRepository {
	return &SponsorRepository{
		sponsors:  db.Collection("sponsors"),
		donations: db.Collection("donations"),
	}
}

func (r *SponsorRepository) Create(ctx context.Context, s *models.Sponsor) error {
	count, err := r.sponsors.CountDocuments(ctx, bson.M{"name": s.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrDuplicate
	}

	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	result, err := r.sponsors.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	s.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	err := r.sponsors.FindOne(ctx, bson.M{"_id": id}).Decode(&sponsor)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &sponsor, nil
}

func (r *SponsorRepository) GetAll(ctx context.Context) ([]models.Sponsor, error) {
	cursor, err := r.sponsors.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sponsors []models.Sponsor
	if err = cursor.All(ctx, &sponsors); err != nil {
		return nil, err
	}
	if sponsors == nil {
		sponsors = []models.Sponsor{}
	}
	return sponsors, nil
}

func (r *SponsorRepository) Update(ctx context.Context, s *models.Sponsor) error {
	if s.ID.IsZero() {
		return models.ErrInvalidID
	}

	s.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":       s.Name,
		"email":      s.Email,
		"phone":      s.Phone,
		"logo_url":   s.LogoURL,
		"website":    s.Website,
		"updated_at": s.UpdatedAt,
	}}

	result, err := r.sponsors.UpdateOne(ctx, bson.M{"_id": s.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.sponsors.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *SponsorRepository) CreateDonation(ctx context.Context, d *models.Donation) error {
	d.CreatedAt = time.Now().UTC()

	result, err := r.donations.InsertOne(ctx, d)
	if err != nil {
		return err
	}
	d.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *SponsorRepository) GetDonations(ctx context.Context, sponsorID primitive.ObjectID) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.donations.Find(ctx, bson.M{"sponsor_id": sponsorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []models.Donation
	if err = cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []models.Donation{}
	}
	return donations, nil
}
