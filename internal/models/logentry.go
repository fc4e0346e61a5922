package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// LogEntry is one append-only audit record. User is a snapshot taken at write
// time, Meta carries free-form key/value payload (request IP, user agent,
// method, URL when the entry came out of an HTTP handler).
type LogEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"        json:"id,omitempty"`
	Title       string             `bson:"title"                json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Severity    Severity           `bson:"severity"             json:"severity"`
	User        *ActorSnapshot     `bson:"user,omitempty"       json:"user,omitempty"`
	Meta        map[string]string  `bson:"meta,omitempty"       json:"meta,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"           json:"created_at"`
}
