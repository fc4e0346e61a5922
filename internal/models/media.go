package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GalleryImage struct {
	ObjectKey string    `bson:"object_key" json:"object_key"`
	URL       string    `bson:"url"        json:"url"`
	Caption   string    `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Gallery struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"    json:"id,omitempty"`
	Title     string             `bson:"title"            json:"title" validate:"required"`
	MatchID   primitive.ObjectID `bson:"match_id,omitempty" json:"match_id,omitempty"`
	Images    []GalleryImage     `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt time.Time          `bson:"created_at"       json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"       json:"updated_at"`
}

type Document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title"         json:"title" validate:"required"`
	FileName  string             `bson:"file_name"     json:"file_name"`
	ObjectKey string             `bson:"object_key"    json:"object_key"`
	URL       string             `bson:"url"           json:"url"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
}

// Highlight points at an externally hosted video clip.
type Highlight struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"      json:"id,omitempty"`
	Title     string             `bson:"title"              json:"title" validate:"required"`
	VideoURL  string             `bson:"video_url"          json:"video_url" validate:"required,url"`
	MatchID   primitive.ObjectID `bson:"match_id,omitempty" json:"match_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"         json:"created_at"`
}
