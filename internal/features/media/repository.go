package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/inkwell-app/inkwell/pkg/errors"
)

type Repository struct {
	coversCollection *mongo.Collection
	videosCollection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		coversCollection: db.Collection("coverImages"),
		videosCollection: db.Collection("videos"),
	}
}

// CreateCover stores a cover-image record.
func (r *Repository) CreateCover(ctx context.Context, cover *CoverImage) error {
	cover.ID = primitive.NewObjectID()
	cover.CreatedAt = time.Now()

	_, err := r.coversCollection.InsertOne(ctx, cover)
	return err
}

// ListCovers returns all cover images, newest first.
func (r *Repository) ListCovers(ctx context.Context) ([]CoverImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coversCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var covers []CoverImage
	if err := cursor.All(ctx, &covers); err != nil {
		return nil, err
	}
	return covers, nil
}

// DeleteCover removes a cover-image record, returning it so the handler can
// remove the file as well.
func (r *Repository) DeleteCover(ctx context.Context, id string) (*CoverImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cover image id", apperrors.ErrValidation)
	}

	var cover CoverImage
	err = r.coversCollection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&cover)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: cover image", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &cover, nil
}

// CreateVideo stores a video record.
func (r *Repository) CreateVideo(ctx context.Context, video *Video) error {
	video.ID = primitive.NewObjectID()
	video.CreatedAt = time.Now()

	_, err := r.videosCollection.InsertOne(ctx, video)
	return err
}

// ListVideos returns all videos, newest first.
func (r *Repository) ListVideos(ctx context.Context) ([]Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.videosCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var videos []Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// DeleteVideo removes a video record.
func (r *Repository) DeleteVideo(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid video id", apperrors.ErrValidation)
	}

	result, err := r.videosCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: video", apperrors.ErrNotFound)
	}
	return nil
}
