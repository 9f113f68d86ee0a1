package ads

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// configID pins the configuration to one well-known document.
const configID = "ad-config"

type Repository struct {
	configCollection    *mongo.Collection
	inquiriesCollection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		configCollection:    db.Collection("adConfig"),
		inquiriesCollection: db.Collection("adInquiries"),
	}
}

// GetConfig returns the current configuration, synthesizing an empty one with
// every slot hidden when none has been stored yet.
func (r *Repository) GetConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	err := r.configCollection.FindOne(ctx, bson.M{"_id": configID}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	return &cfg, nil
}

// ReplaceConfig swaps in the full desired slot state and bumps the version.
func (r *Repository) ReplaceConfig(ctx context.Context, slots map[Slot]SlotConfig) (*Config, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"slots":     slots,
			"updatedAt": now,
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cfg Config
	err := r.configCollection.FindOneAndUpdate(ctx, bson.M{"_id": configID}, update, opts).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetSlotImage updates the image of one slot, bumping the version.
func (r *Repository) SetSlotImage(ctx context.Context, slot Slot, imageURL string) (*Config, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"slots." + string(slot) + ".imageUrl": imageURL,
			"updatedAt":                           now,
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cfg Config
	err := r.configCollection.FindOneAndUpdate(ctx, bson.M{"_id": configID}, update, opts).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	slots := make(map[Slot]SlotConfig, len(AllSlots))
	for _, s := range AllSlots {
		slots[s] = SlotConfig{}
	}
	return &Config{ID: configID, Slots: slots}
}

// CreateInquiry stores an advertising contact request.
func (r *Repository) CreateInquiry(ctx context.Context, inquiry *Inquiry) error {
	inquiry.ID = primitive.NewObjectID()
	inquiry.CreatedAt = time.Now()

	_, err := r.inquiriesCollection.InsertOne(ctx, inquiry)
	return err
}

// ListInquiries returns all inquiries, newest first.
func (r *Repository) ListInquiries(ctx context.Context) ([]Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.inquiriesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
