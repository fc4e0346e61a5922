package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Squad is a named player group for a season or competition.
type Squad struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"       json:"id,omitempty"`
	Name        string               `bson:"name"                json:"name" validate:"required"`
	Season      string               `bson:"season,omitempty"    json:"season,omitempty"`
	Competition string               `bson:"competition,omitempty" json:"competition,omitempty"`
	PlayerIDs   []primitive.ObjectID `bson:"player_ids,omitempty" json:"player_ids,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"          json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"          json:"updated_at"`
}
