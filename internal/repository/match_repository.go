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

type MatchRepository struct {
	col *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{col: db.Collection("matches")}
}

func (r *MatchRepository) Create(ctx context.Context, m *models.Match) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	m.ID = result.InsertedID.(primitive.ObjectID)

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var match models.Match
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		return nil, handleDatabaseError(err)
	}
	return &match, nil
}

func (r *MatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []models.Match
	if err = cursor.All(ctx, &matches); err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

// Update replaces the editable fields of a fixture. IsHome is fixed at
// creation and deliberately not part of the update document.
func (r *MatchRepository) Update(ctx context.Context, m *models.Match) error {
	if m.ID.IsZero() {
		return models.ErrInvalidID
	}

	m.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"opponent":   m.Opponent,
		"date":       m.Date,
		"location":   m.Location,
		"updated_at": m.UpdatedAt,
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": m.ID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) AddGoal(ctx context.Context, matchID primitive.ObjectID, goal models.GoalEvent) error {
	return r.pushEvent(ctx, matchID, "goals", goal)
}

func (r *MatchRepository) RemoveGoal(ctx context.Context, matchID, goalID primitive.ObjectID) error {
	return r.pullEvent(ctx, matchID, "goals", goalID)
}

func (r *MatchRepository) AddCard(ctx context.Context, matchID primitive.ObjectID, card models.Card) error {
	return r.pushEvent(ctx, matchID, "cards", card)
}

func (r *MatchRepository) RemoveCard(ctx context.Context, matchID, cardID primitive.ObjectID) error {
	return r.pullEvent(ctx, matchID, "cards", cardID)
}

func (r *MatchRepository) AddInjury(ctx context.Context, matchID primitive.ObjectID, injury models.Injury) error {
	return r.pushEvent(ctx, matchID, "injuries", injury)
}

func (r *MatchRepository) RemoveInjury(ctx context.Context, matchID, injuryID primitive.ObjectID) error {
	return r.pullEvent(ctx, matchID, "injuries", injuryID)
}

func (r *MatchRepository) SetMVP(ctx context.Context, matchID, playerID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"mvp_id":     playerID,
		"updated_at": time.Now().UTC(),
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": matchID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) pushEvent(ctx context.Context, matchID primitive.ObjectID, field string, event interface{}) error {
	update := bson.M{
		"$push": bson.M{field: event},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": matchID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) pullEvent(ctx context.Context, matchID primitive.ObjectID, field string, eventID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{field: bson.M{"_id": eventID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": matchID}, update)
	if err != nil {
		return handleDatabaseError(err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
