package blogs

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConclusionFormat is the marker every non-null conclusion payload must carry.
const ConclusionFormat = "rich-text"

// Post is a blog post. All counter fields are mutated exclusively through
// atomic $inc updates.
type Post struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title           string                 `bson:"title" json:"title"`
	Content         map[string]interface{} `bson:"content" json:"content"`
	Conclusion      *Conclusion            `bson:"conclusion,omitempty" json:"conclusion,omitempty"`
	CoverImage      string                 `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Category        string                 `bson:"category" json:"category"`
	Location        string                 `bson:"location,omitempty" json:"location,omitempty"`
	Author          primitive.ObjectID     `bson:"author" json:"author"`
	Views           int64                  `bson:"views" json:"views"`
	ReadTimeSeconds int64                  `bson:"readTimeSeconds" json:"readTimeSeconds"`
	ReadCount       int64                  `bson:"readCount" json:"readCount"`
	Likes           int64                  `bson:"likes" json:"likes"`
	Shares          int64                  `bson:"shares" json:"shares"`
	CommentCount    int64                  `bson:"commentCount" json:"commentCount"`
	Rating          float64                `bson:"rating" json:"rating"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// Conclusion is an optional closing block on a post. When present it must
// carry the rich-text format marker and non-empty text.
type Conclusion struct {
	Format string `bson:"format" json:"format"`
	Text   string `bson:"text" json:"text"`
}

type CreatePostRequest struct {
	Title      string                 `json:"title" binding:"required"`
	Content    map[string]interface{} `json:"content" binding:"required"`
	Conclusion *Conclusion            `json:"conclusion"`
	CoverImage string                 `json:"coverImage"`
	Category   string                 `json:"category"`
	Location   string                 `json:"location"`
}

// UpdatePostRequest carries partial updates. Conclusion is kept raw so an
// explicit null (clear the conclusion) can be told apart from an absent field.
type UpdatePostRequest struct {
	Title      *string                `json:"title"`
	Content    map[string]interface{} `json:"content"`
	Conclusion json.RawMessage        `json:"conclusion"`
	CoverImage *string                `json:"coverImage"`
	Category   *string                `json:"category"`
	Location   *string                `json:"location"`
	Rating     *float64               `json:"rating"`
}

type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Location string `form:"location"`
}

type ReadTimeRequest struct {
	Seconds int64 `json:"seconds" binding:"required,min=1"`
}

// PostComment is the comment shape embedded in the post detail response.
// The comment feature fills it in through the CommentService interface.
type PostComment struct {
	ID        primitive.ObjectID `json:"id"`
	Text      string             `json:"text"`
	Username  string             `json:"username,omitempty"`
	Email     string             `json:"email,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}

// PostDetail is a post together with its comments.
type PostDetail struct {
	Post     *Post         `json:"post"`
	Comments []PostComment `json:"comments"`
}
