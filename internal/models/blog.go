package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single post stored in the blogs collection. Author is populated
// from the users collection on reads and is never written back.
type Blog struct {
	ID        primitive.ObjectID `json:"id"               bson:"_id,omitempty"`
	Title     string             `json:"title"            bson:"title"`
	Content   string             `json:"content"          bson:"content"`
	AuthorID  primitive.ObjectID `json:"-"                bson:"author_id"`
	Author    *Author            `json:"author,omitempty" bson:"author,omitempty"`
	CreatedAt time.Time          `json:"created_at"       bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"       bson:"updated_at"`
}

// CreateBlogRequest is the JSON body for POST /api/blogs.
type CreateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateBlogRequest is the JSON body for PUT /api/blogs/{id}.
// Empty fields keep their stored value.
type UpdateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
