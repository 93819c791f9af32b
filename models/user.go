package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is what gets persisted for a session. It never carries the
// password.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credential is a row in the identity table.
type Credential struct {
	ObjectID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       string             `bson:"userID" json:"userID"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (c Credential) Identity() Identity {
	return Identity{ID: c.UserID, Email: c.Email, Name: c.Name}
}
