package models

import "gorm.io/gorm"

// EmojiIcons maps the logical emoji keys to the symbols shown by the UI.
var EmojiIcons = map[string]string{
	"like":  "👍",
	"love":  "❤️",
	"laugh": "😂",
	"wow":   "😮",
}

// Reaction is a single user's emoji response to a pin. The composite unique
// index makes one-reaction-per-user-per-pin race-safe at the storage layer;
// the check constraint keeps the emoji inside the enumerated set.
type Reaction struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	PinID      uint   `json:"pin_id" gorm:"uniqueIndex:idx_reaction_pin_user"`
	UserID     uint   `json:"user_id" gorm:"uniqueIndex:idx_reaction_pin_user"`
	Emoji      string `json:"emoji" gorm:"size:10;check:emoji IN ('like','love','laugh','wow')"`
}

// CreateReactionRequest defines the request body for reacting to a pin
type CreateReactionRequest struct {
	Emoji string `json:"emoji" form:"emoji" validate:"required,oneof=like love laugh wow"`
}
