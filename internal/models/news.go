package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type News struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"id,omitempty"`
	Title     string             `bson:"title"               json:"title" validate:"required"`
	Body      string             `bson:"body"                json:"body" validate:"required"`
	CoverURL  string             `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	AuthorID  primitive.ObjectID `bson:"author_id,omitempty" json:"author_id,omitempty"`
	Published bool               `bson:"published"           json:"published"`
	CreatedAt time.Time          `bson:"created_at"          json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"          json:"updated_at"`
}
