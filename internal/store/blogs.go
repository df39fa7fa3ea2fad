package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/inkwell-api/internal/models"
)

var ErrBlogNotFound = errors.New("blog not found")

// BlogStore handles blog post CRUD in MongoDB.
type BlogStore struct {
	col *mongo.Collection
}

func NewBlogStore(db *mongo.Database) *BlogStore {
	return &BlogStore{col: db.Collection("blogs")}
}

// authorLookup joins each blog with its author and keeps only the public
// author fields. The password hash never leaves the database.
func authorLookup() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "author_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "author._id", Value: 0},
			{Key: "author.password", Value: 0},
			{Key: "author.created_at", Value: 0},
		}}},
	}
}

func (s *BlogStore) Insert(ctx context.Context, blog *models.Blog) (string, error) {
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, blog)
	if err != nil {
		return "", fmt.Errorf("blog insert: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *BlogStore) FindAll(ctx context.Context) ([]models.Blog, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}
	pipeline = append(pipeline, authorLookup()...)

	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *BlogStore) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrBlogNotFound
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}},
	}
	pipeline = append(pipeline, authorLookup()...)

	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, ErrBlogNotFound
	}
	return &blogs[0], nil
}

// Update sets the non-empty fields and refreshes updated_at.
func (s *BlogStore) Update(ctx context.Context, id, title, content string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBlogNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if title != "" {
		set["title"] = title
	}
	if content != "" {
		set["content"] = content
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (s *BlogStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBlogNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}
