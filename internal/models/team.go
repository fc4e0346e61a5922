package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team is either the club itself (IsClub set on exactly one document) or a
// lightweight opponent record.
type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name"                json:"name" validate:"required"`
	Alias     string             `bson:"alias,omitempty"     json:"alias,omitempty"`
	LogoURL   string             `bson:"logo_url,omitempty"  json:"logo_url,omitempty"`
	Community string             `bson:"community,omitempty" json:"community,omitempty"`
	Contact   string             `bson:"contact,omitempty"   json:"contact,omitempty"`
	IsClub    bool               `bson:"is_club,omitempty"   json:"is_club,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
