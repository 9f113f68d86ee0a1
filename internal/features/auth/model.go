package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell-app/inkwell/internal/pkg/token"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Birthdate    time.Time          `bson:"birthdate" json:"birthdate"`
	Gender       string             `bson:"gender" json:"gender"`
	Role         token.Role         `bson:"role" json:"role"`
	LoginHistory []LoginRecord      `bson:"loginHistory" json:"loginHistory,omitempty"`
	Sessions     []Session          `bson:"sessions" json:"sessions,omitempty"`
	LastOnline   *time.Time         `bson:"lastOnline" json:"lastOnline,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LoginRecord captures one successful login.
type LoginRecord struct {
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IP        string    `bson:"ip" json:"ip"`
	UserAgent string    `bson:"userAgent" json:"userAgent"`
}

// Session tracks one login session. DurationSeconds is nil while the session
// is still open and backfilled at logout.
type Session struct {
	StartedAt       time.Time `bson:"startedAt" json:"startedAt"`
	DurationSeconds *int64    `bson:"durationSeconds" json:"durationSeconds,omitempty"`
}

// Gender values accepted at registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Birthdate string `json:"birthdate" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	Token string       `json:"token,omitempty"`
	User  *UserSummary `json:"user"`
}

// UserSummary is the safe public shape of a user.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Role      token.Role         `json:"role"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginTracking is the admin view of a user's login activity.
type LoginTracking struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	LoginHistory []LoginRecord      `bson:"loginHistory" json:"loginHistory"`
	Sessions     []Session          `bson:"sessions" json:"sessions"`
	LastOnline   *time.Time         `bson:"lastOnline" json:"lastOnline,omitempty"`
}
