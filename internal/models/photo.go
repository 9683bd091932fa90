package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxPinPhotos is the total attachment budget per pin: the cover image
// (if present) counts as one slot, gallery photos fill the rest.
const MaxPinPhotos = 5

// Photo is an additional gallery image attached to a Pin, distinct from the
// pin's cover image.
type Photo struct {
	gorm.Model `json:"-"`
	ID         uint      `json:"id" gorm:"primaryKey"`
	PinID      uint      `json:"pin_id" gorm:"index"`
	ImageURL   string    `json:"url"`
	Caption    string    `json:"caption,omitempty" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
}

// GalleryItem is one entry in the flattened "my photos" listing. Covers are
// reported with a synthetic "cover-<pinID>" identifier since they are not
// Photo rows.
type GalleryItem struct {
	ID        string    `json:"id"`
	PinID     uint      `json:"pin_id"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}
