package auth

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

// Repository handles database interactions for the auth feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new user.
func (r *Repository) Create(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// FindByEmail finds a user by their email address.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by their hex object id.
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}

	var user User
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies partial field updates to a user.
func (r *Repository) Update(ctx context.Context, userID string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}

	updates["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user", apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a user.
func (r *Repository) Delete(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: user", apperrors.ErrNotFound)
	}
	return nil
}

// loginUpdate builds the single update applied on login: exactly one new
// history entry, exactly one new open session, lastOnline refreshed.
func loginUpdate(record LoginRecord) bson.M {
	return bson.M{
		"$push": bson.M{
			"loginHistory": record,
			"sessions":     Session{StartedAt: record.Timestamp},
		},
		"$set": bson.M{
			"lastOnline": record.Timestamp,
			"updatedAt":  record.Timestamp,
		},
	}
}

// RecordLogin appends one login-history entry, opens a new session and
// refreshes lastOnline in a single update.
func (r *Repository) RecordLogin(ctx context.Context, userID primitive.ObjectID, record LoginRecord) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, loginUpdate(record))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: user", apperrors.ErrNotFound)
	}
	return nil
}

// latestOpenSession returns the index of the most recently started session
// without a duration, or -1 when every session is already closed.
func latestOpenSession(sessions []Session) int {
	latest := -1
	for i, s := range sessions {
		if s.DurationSeconds == nil && (latest == -1 || s.StartedAt.After(sessions[latest].StartedAt)) {
			latest = i
		}
	}
	return latest
}

// CloseLatestSession backfills the duration of the most recent open session.
// It targets only that one entry; historical sessions are never touched.
// Returns false without error when no open session exists, which makes a
// repeated logout a no-op.
func (r *Repository) CloseLatestSession(ctx context.Context, userID string, now time.Time) (bool, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}

	latest := latestOpenSession(user.Sessions)
	if latest == -1 {
		return false, nil
	}

	duration := int64(now.Sub(user.Sessions[latest].StartedAt).Seconds())
	if duration < 0 {
		duration = 0
	}

	update := bson.M{
		"$set": bson.M{
			fmt.Sprintf("sessions.%d.durationSeconds", latest): duration,
			"lastOnline": now,
			"updatedAt":  now,
		},
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return false, err
	}
	return true, nil
}

// UserRef is the minimal public identification of a user, used when other
// features populate author information.
type UserRef struct {
	Username string `bson:"username"`
	Email    string `bson:"email"`
}

// FindRefsByIDs batch-resolves user ids to username/email pairs.
func (r *Repository) FindRefsByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]UserRef, error) {
	refs := make(map[primitive.ObjectID]UserRef)
	if len(ids) == 0 {
		return refs, nil
	}

	opts := options.Find().SetProjection(bson.M{"username": 1, "email": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			ID       primitive.ObjectID `bson:"_id"`
			Username string             `bson:"username"`
			Email    string             `bson:"email"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		refs[doc.ID] = UserRef{Username: doc.Username, Email: doc.Email}
	}
	return refs, cursor.Err()
}

// ListLoginTracking returns the login activity of every user.
func (r *Repository) ListLoginTracking(ctx context.Context) ([]LoginTracking, error) {
	opts := options.Find().
		SetProjection(bson.M{
			"username":     1,
			"email":        1,
			"loginHistory": 1,
			"sessions":     1,
			"lastOnline":   1,
		}).
		SetSort(bson.D{{Key: "lastOnline", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tracking []LoginTracking
	if err := cursor.All(ctx, &tracking); err != nil {
		return nil, err
	}
	return tracking, nil
}
