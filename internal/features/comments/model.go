package comments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a comment on a post. UserID is nil for anonymous comments.
type Comment struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID  `bson:"postId" json:"postId"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	Text      string              `bson:"text" json:"text"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}

type CreateCommentRequest struct {
	PostID string `json:"postId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// CommentView is a comment with its author populated where one exists.
type CommentView struct {
	ID        primitive.ObjectID `json:"id"`
	PostID    primitive.ObjectID `json:"postId"`
	Text      string             `json:"text"`
	Username  string             `json:"username,omitempty"`
	Email     string             `json:"email,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}
