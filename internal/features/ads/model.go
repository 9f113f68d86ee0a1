package ads

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot is the closed set of ad placements. Arbitrary slot names are rejected
// at validation time, so no defensive key cleanup is ever needed.
type Slot string

const (
	SlotLeft1  Slot = "left1"
	SlotLeft2  Slot = "left2"
	SlotRight1 Slot = "right1"
	SlotRight2 Slot = "right2"
	SlotHero   Slot = "hero"
	SlotBottom Slot = "bottom"
)

// AllSlots lists every valid slot.
var AllSlots = []Slot{SlotLeft1, SlotLeft2, SlotRight1, SlotRight2, SlotHero, SlotBottom}

// ValidSlot reports whether s names a known placement.
func ValidSlot(s Slot) bool {
	for _, known := range AllSlots {
		if s == known {
			return true
		}
	}
	return false
}

// SlotConfig is the state of one placement.
type SlotConfig struct {
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
	LinkURL  string `bson:"linkUrl" json:"linkUrl"`
	Visible  bool   `bson:"visible" json:"visible"`
}

// Config is the single versioned ad configuration document. Version bumps on
// every replace so clients can detect stale reads.
type Config struct {
	ID        string              `bson:"_id" json:"-"`
	Version   int64               `bson:"version" json:"version"`
	Slots     map[Slot]SlotConfig `bson:"slots" json:"slots"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ReplaceConfigRequest carries the full desired slot state.
type ReplaceConfigRequest struct {
	Slots map[Slot]SlotConfig `json:"slots" binding:"required"`
}

// InquiryType is the closed set of advertisement products.
type InquiryType string

const (
	InquiryBanner     InquiryType = "banner"
	InquirySidebar    InquiryType = "sidebar"
	InquirySponsored  InquiryType = "sponsored"
	InquiryNewsletter InquiryType = "newsletter"
)

func ValidInquiryType(t InquiryType) bool {
	switch t {
	case InquiryBanner, InquirySidebar, InquirySponsored, InquiryNewsletter:
		return true
	}
	return false
}

// Inquiry is an advertising contact request.
type Inquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	AdType    InquiryType        `bson:"adType" json:"adType"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateInquiryRequest struct {
	Name    string      `json:"name" binding:"required"`
	Email   string      `json:"email" binding:"required"`
	Company string      `json:"company"`
	AdType  InquiryType `json:"adType" binding:"required"`
	Message string      `json:"message"`
}
