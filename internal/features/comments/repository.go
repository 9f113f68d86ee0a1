package comments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("comments")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a new comment.
func (r *Repository) Create(ctx context.Context, comment *Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// ListByPost returns the comments of one post, newest first.
func (r *Repository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []Comment
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteByPost removes every comment referencing a post. Used by the blog
// delete cascade.
func (r *Repository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountAll returns the total number of comments across all posts.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
