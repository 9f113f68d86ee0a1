package bookings

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a call-booking form submission.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DateTime  time.Time          `bson:"dateTime" json:"dateTime"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateBookingRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required"`
	Phone    string    `json:"phone"`
	DateTime time.Time `json:"dateTime" binding:"required"`
	Message  string    `json:"message"`
}
