package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleEditor  Role = "editor"
	RoleMember  Role = "member"
	RoleAll     Role = "all"
)

func ToRole(role string) Role {
	switch role {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "editor":
		return RoleEditor
	case "member":
		return RoleMember
	default:
		return RoleAll
	}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEditor, RoleMember:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email"         json:"email"`
	Name      string             `bson:"name"          json:"name"`
	Role      Role               `bson:"role"          json:"role"`
	Banned    bool               `bson:"banned"        json:"banned"`
	Password  string             `bson:"password"      json:"-"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"    json:"updated_at"`
}

// ActorSnapshot is the identity captured into archive and log records at write
// time. It is a copy, not a reference: later edits to the user document do not
// rewrite history.
type ActorSnapshot struct {
	ID    primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name"         json:"name"`
	Email string             `bson:"email"        json:"email"`
	Role  Role               `bson:"role"         json:"role"`
}

func (u *User) Snapshot() *ActorSnapshot {
	if u == nil {
		return nil
	}
	return &ActorSnapshot{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
