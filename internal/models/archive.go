package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceCollection names the collection an archived document came from.
// The set is closed: anything else is rejected before the snapshot is written.
type SourceCollection string

const (
	SourcePlayers   SourceCollection = "players"
	SourceUsers     SourceCollection = "users"
	SourceGalleries SourceCollection = "galleries"
	SourceNews      SourceCollection = "news"
	SourceSponsors  SourceCollection = "sponsors"
	SourceTeams     SourceCollection = "teams"
	SourceMatches   SourceCollection = "matches"
	SourceSquads    SourceCollection = "squads"
	SourceStaff     SourceCollection = "staff"
)

func (s SourceCollection) IsValid() bool {
	switch s {
	case SourcePlayers, SourceUsers, SourceGalleries, SourceNews,
		SourceSponsors, SourceTeams, SourceMatches, SourceSquads, SourceStaff:
		return true
	}
	return false
}

// ArchiveRecord is an immutable pre-mutation snapshot. It outlives the source
// document: deleting the original never touches its archive entries.
type ArchiveRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"     json:"id,omitempty"`
	Doc              bson.Raw           `bson:"doc"               json:"doc"`
	SourceCollection SourceCollection   `bson:"source_collection" json:"source_collection"`
	OriginalID       primitive.ObjectID `bson:"original_id"       json:"original_id"`
	Reason           string             `bson:"reason,omitempty"  json:"reason,omitempty"`
	User             *ActorSnapshot     `bson:"user,omitempty"    json:"user,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"        json:"created_at"`
}
