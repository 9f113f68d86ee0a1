package blogs

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/inkwell-app/inkwell/pkg/errors"
)

const relatedLimit = 10

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("posts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

// Create inserts a new post with its counters zeroed.
func (r *Repository) Create(ctx context.Context, post *Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt

	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// listFilter builds the List query. Free-text search is a case-insensitive
// substring match over the title and the rich-text body, which is stored
// either flat as content.text or as a content.blocks array whose entries
// carry their own text field.
func listFilter(q ListQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content.text": pattern},
			bson.M{"content.blocks.text": pattern},
		}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Location != "" {
		filter["location"] = q.Location
	}

	return filter
}

// List returns posts newest-first, optionally filtered by free-text search,
// category and location.
func (r *Repository) List(ctx context.Context, q ListQuery) ([]Post, error) {
	return r.find(ctx, listFilter(q), options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ListByCategory returns the posts of one category, newest first.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]Post, error) {
	return r.find(ctx, bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ListAll returns every post. The reporting layer aggregates over this.
func (r *Repository) ListAll(ctx context.Context) ([]Post, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

// FindByID returns one post.
func (r *Repository) FindByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid post id", apperrors.ErrValidation)
	}

	var post Post
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: post", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &post, nil
}

// Update merges the provided fields into a post and removes the fields named
// in unset.
func (r *Repository) Update(ctx context.Context, id string, updates bson.M, unset bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid post id", apperrors.ErrValidation)
	}

	updates["updatedAt"] = time.Now()

	update := bson.M{"$set": updates}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: post", apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a post. Comment cascade happens at the handler level via
// the CommentService; a crash between the two leaves orphaned comments that
// the next delete of the same id cannot retry, which is accepted behavior.
func (r *Repository) Delete(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid post id", apperrors.ErrValidation)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if result.DeletedCount == 0 {
		return primitive.NilObjectID, fmt.Errorf("%w: post", apperrors.ErrNotFound)
	}
	return oid, nil
}

// Related finds up to 10 posts sharing the category or overlapping title
// tokens with the source post, newest first, excluding the source itself.
func (r *Repository) Related(ctx context.Context, post *Post) ([]Post, error) {
	or := bson.A{bson.M{"category": post.Category}}
	if pattern := TitleTokenPattern(post.Title); pattern != "" {
		or = append(or, bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}})
	}

	filter := bson.M{
		"_id": bson.M{"$ne": post.ID},
		"$or": or,
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(relatedLimit)

	return r.find(ctx, filter, opts)
}

// IncrementCounter atomically bumps a single counter field. A read-modify-
// write here would lose updates under concurrent requests; $inc does not.
func (r *Repository) IncrementCounter(ctx context.Context, id string, field string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid post id", apperrors.ErrValidation)
	}
	return r.incrementCounters(ctx, oid, bson.M{field: delta})
}

// AddReadTime records a completed read: cumulative seconds plus one read.
func (r *Repository) AddReadTime(ctx context.Context, id string, seconds int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid post id", apperrors.ErrValidation)
	}
	return r.incrementCounters(ctx, oid, bson.M{"readTimeSeconds": seconds, "readCount": 1})
}

// IncrementCommentCount is invoked by the comment feature when a comment is
// created on this post.
func (r *Repository) IncrementCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	return r.incrementCounters(ctx, id, bson.M{"commentCount": delta})
}

// Exists reports whether a post id resolves.
func (r *Repository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	return count > 0, err
}

func (r *Repository) incrementCounters(ctx context.Context, id primitive.ObjectID, counters bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": counters,
		"$set": bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: post", apperrors.ErrNotFound)
	}
	return nil
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
