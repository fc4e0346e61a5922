package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/utils"
)

type WinStatus string

const (
	WinStatusWin  WinStatus = "win"
	WinStatusLoss WinStatus = "loss"
	WinStatusDraw WinStatus = "draw"
)

// GoalEvent is one goal recorded against a match. ForClub marks goals scored
// by the club; everything else counts for the opponent.
type GoalEvent struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"      json:"id,omitempty"`
	ForClub  bool               `bson:"for_club"           json:"for_club"`
	ScorerID primitive.ObjectID `bson:"scorer_id,omitempty" json:"scorer_id,omitempty"`
	Minute   int                `bson:"minute,omitempty"   json:"minute,omitempty"`
}

type CardColor string

const (
	CardYellow CardColor = "yellow"
	CardRed    CardColor = "red"
)

type Card struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"      json:"id,omitempty"`
	PlayerID primitive.ObjectID `bson:"player_id"          json:"player_id"`
	Color    CardColor          `bson:"color"              json:"color"`
	Minute   int                `bson:"minute,omitempty"   json:"minute,omitempty"`
}

type Injury struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"    json:"id,omitempty"`
	PlayerID primitive.ObjectID `bson:"player_id"        json:"player_id"`
	Note     string             `bson:"note,omitempty"   json:"note,omitempty"`
	Minute   int                `bson:"minute,omitempty" json:"minute,omitempty"`
}

// Match is one fixture. IsHome is fixed at creation and drives home/away
// attribution for every derived statistic.
type Match struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"      json:"id,omitempty"`
	IsHome    bool               `bson:"is_home"            json:"is_home"`
	Opponent  Team               `bson:"opponent"           json:"opponent" validate:"required"`
	Date      time.Time          `bson:"date"               json:"date"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Goals     []GoalEvent        `bson:"goals,omitempty"    json:"goals,omitempty"`
	Cards     []Card             `bson:"cards,omitempty"    json:"cards,omitempty"`
	Injuries  []Injury           `bson:"injuries,omitempty" json:"injuries,omitempty"`
	MVPID     primitive.ObjectID `bson:"mvp_id,omitempty"   json:"mvp_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"         json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"         json:"updated_at"`
}

func (m Match) Validate() error {
	err := utils.GetValidator().Struct(m)
	if err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}
