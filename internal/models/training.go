package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Training struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"        json:"id,omitempty"`
	Date      time.Time            `bson:"date"                 json:"date"`
	Location  string               `bson:"location,omitempty"   json:"location,omitempty"`
	SquadID   primitive.ObjectID   `bson:"squad_id,omitempty"   json:"squad_id,omitempty"`
	Attendees []primitive.ObjectID `bson:"attendees,omitempty"  json:"attendees,omitempty"`
	Notes     string               `bson:"notes,omitempty"      json:"notes,omitempty"`
	CreatedAt time.Time            `bson:"created_at"           json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"           json:"updated_at"`
}
