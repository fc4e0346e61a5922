package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"club-app/internal/utils"
)

type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"        json:"id,omitempty"`
	FirstName    string             `bson:"first_name"           json:"first_name" validate:"required"`
	LastName     string             `bson:"last_name"            json:"last_name" validate:"required"`
	JerseyNumber int                `bson:"jersey_number"        json:"jersey_number" validate:"gte=1,lte=99"`
	Position     Position           `bson:"position"             json:"position" validate:"required"`
	DateOfBirth  time.Time          `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	PhotoURL     string             `bson:"photo_url,omitempty"  json:"photo_url,omitempty"`
	Active       bool               `bson:"active"               json:"active"`
	CreatedAt    time.Time          `bson:"created_at"           json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"           json:"updated_at"`
}

func (p Player) Validate() error {
	if !p.Position.IsValid() {
		return fmt.Errorf("%w: unknown position %q", ErrValidation, p.Position)
	}
	err := utils.GetValidator().Struct(p)
	if err != nil {
		errs := utils.ParseValidationErrors(err)
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, " // "))
	}
	return nil
}
