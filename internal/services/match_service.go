package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/models"
)

type MatchRepository interface {
	Create(ctx context.Context, m *models.Match) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	GetAll(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, m *models.Match) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddGoal(ctx context.Context, matchID primitive.ObjectID, goal models.GoalEvent) error
	RemoveGoal(ctx context.Context, matchID, goalID primitive.ObjectID) error
	AddCard(ctx context.Context, matchID primitive.ObjectID, card models.Card) error
	RemoveCard(ctx context.Context, matchID, cardID primitive.ObjectID) error
	AddInjury(ctx context.Context, matchID primitive.ObjectID, injury models.Injury) error
	RemoveInjury(ctx context.Context, matchID, injuryID primitive.ObjectID) error
	SetMVP(ctx context.Context, matchID, playerID primitive.ObjectID) error
}

type ClubProvider interface {
	GetClub(ctx context.Context) (*models.Team, error)
}

type MatchService struct {
	repo MatchRepository
	club ClubProvider
}

func NewMatchService(repo MatchRepository, club ClubProvider) *MatchService {
	return &MatchService{repo: repo, club: club}
}

func (s *MatchService) Create(ctx context.Context, m *models.Match) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *MatchService) GetByID(ctx context.Context, id string) (*models.Match, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.repo.GetByID(ctx, objID)
}

func (s *MatchService) GetAll(ctx context.Context) ([]models.Match, error) {
	return s.repo.GetAll(ctx)
}

func (s *MatchService) Update(ctx context.Context, m *models.Match) error {
	if m.ID.IsZero() {
		return models.ErrInvalidID
	}
	if err := m.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *MatchService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.Delete(ctx, objID)
}

// GetStats loads the fixture and enriches it with derived metrics.
func (s *MatchService) GetStats(ctx context.Context, id string) (*models.Match, *MatchMetrics, error) {
	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	club, err := s.club.GetClub(ctx)
	if err != nil {
		return nil, nil, err
	}

	metrics := ComputeMatchMetrics(match, *club)
	return match, &metrics, nil
}

func (s *MatchService) AddGoal(ctx context.Context, matchID string, goal models.GoalEvent) (*models.GoalEvent, error) {
	objID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	goal.ID = primitive.NewObjectID()
	if err := s.repo.AddGoal(ctx, objID, goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *MatchService) RemoveGoal(ctx context.Context, matchID, goalID string) error {
	matchObjID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return models.ErrInvalidID
	}
	goalObjID, err := primitive.ObjectIDFromHex(goalID)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.RemoveGoal(ctx, matchObjID, goalObjID)
}

func (s *MatchService) AddCard(ctx context.Context, matchID string, card models.Card) (*models.Card, error) {
	objID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	if card.Color != models.CardYellow && card.Color != models.CardRed {
		return nil, models.ErrValidation
	}
	card.ID = primitive.NewObjectID()
	if err := s.repo.AddCard(ctx, objID, card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *MatchService) RemoveCard(ctx context.Context, matchID, cardID string) error {
	matchObjID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return models.ErrInvalidID
	}
	cardObjID, err := primitive.ObjectIDFromHex(cardID)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.RemoveCard(ctx, matchObjID, cardObjID)
}

func (s *MatchService) AddInjury(ctx context.Context, matchID string, injury models.Injury) (*models.Injury, error) {
	objID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	injury.ID = primitive.NewObjectID()
	if err := s.repo.AddInjury(ctx, objID, injury); err != nil {
		return nil, err
	}
	return &injury, nil
}

func (s *MatchService) RemoveInjury(ctx context.Context, matchID, injuryID string) error {
	matchObjID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return models.ErrInvalidID
	}
	injuryObjID, err := primitive.ObjectIDFromHex(injuryID)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.RemoveInjury(ctx, matchObjID, injuryObjID)
}

func (s *MatchService) SetMVP(ctx context.Context, matchID, playerID string) error {
	matchObjID, err := primitive.ObjectIDFromHex(matchID)
	if err != nil {
		return models.ErrInvalidID
	}
	playerObjID, err := primitive.ObjectIDFromHex(playerID)
	if err != nil {
		return models.ErrInvalidID
	}
	return s.repo.SetMVP(ctx, matchObjID, playerObjID)
}
