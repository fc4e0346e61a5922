package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Staff struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"     json:"id,omitempty"`
	FirstName string             `bson:"first_name"        json:"first_name" validate:"required"`
	LastName  string             `bson:"last_name"         json:"last_name" validate:"required"`
	RoleTitle string             `bson:"role_title"        json:"role_title" validate:"required"`
	Phone     string             `bson:"phone,omitempty"   json:"phone,omitempty"`
	Email     string             `bson:"email,omitempty"   json:"email,omitempty" validate:"omitempty,email"`
	PhotoURL  string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at"        json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"        json:"updated_at"`
}
