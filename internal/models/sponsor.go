package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sponsor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"      json:"id,omitempty"`
	Name      string             `bson:"name"               json:"name" validate:"required"`
	Email     string             `bson:"email,omitempty"    json:"email,omitempty" validate:"omitempty,email"`
	Phone     string             `bson:"phone,omitempty"    json:"phone,omitempty"`
	LogoURL   string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Website   string             `bson:"website,omitempty"  json:"website,omitempty"`
	CreatedAt time.Time          `bson:"created_at"         json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"         json:"updated_at"`
}

// Donation is recorded per sponsor; the amount is stored in minor units.
type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"   json:"id,omitempty"`
	SponsorID primitive.ObjectID `bson:"sponsor_id"      json:"sponsor_id"`
	Amount    int64              `bson:"amount"          json:"amount" validate:"gt=0"`
	Currency  string             `bson:"currency"        json:"currency"`
	Purpose   string             `bson:"purpose,omitempty" json:"purpose,omitempty"`
	CreatedAt time.Time          `bson:"created_at"      json:"created_at"`
}
