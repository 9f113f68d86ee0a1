package media

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoverImage is a stored cover-image file reference.
type CoverImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Path      string             `bson:"path" json:"path"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Video is an embedded-video record.
type Video struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	URL       string             `bson:"url" json:"url"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateVideoRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}
