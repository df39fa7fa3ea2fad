package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record in the users collection.
type User struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Username  string             `json:"username"   bson:"username"`
	Email     string             `json:"email"      bson:"email"`
	Password  string             `json:"-"          bson:"password"` // bcrypt hash, never serialized
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Author is the subset of user fields embedded in blog responses.
type Author struct {
	Username string `json:"username" bson:"username"`
	Email    string `json:"email"    bson:"email"`
}

// SignupRequest is the JSON body for POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
