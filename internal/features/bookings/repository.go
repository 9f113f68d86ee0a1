package bookings

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/inkwell-app/inkwell/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("callBookings")}
}

// Create stores a new booking.
func (r *Repository) Create(ctx context.Context, booking *Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

// List returns all bookings ordered by requested call time.
func (r *Repository) List(ctx context.Context) ([]Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete removes a booking.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id", apperrors.ErrValidation)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: booking", apperrors.ErrNotFound)
	}
	return nil
}
