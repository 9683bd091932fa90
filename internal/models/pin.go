package models

import "gorm.io/gorm"

// Pin represents a single geotagged location a user dropped on the globe.
// City/state/country are the human-readable location; latitude/longitude are
// resolved by the geocoder before the pin is persisted and are always set.
// The cover image lives on the pin itself; extra gallery images are Photo rows.
type Pin struct {
	gorm.Model    `json:"-"`
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"index"`
	City          string     `json:"city" gorm:"size:100"`
	State         string     `json:"state" gorm:"size:120"`
	Country       string     `json:"country" gorm:"size:100"`
	Latitude      float64    `json:"lat"` // -90..+90
	Longitude     float64    `json:"lon"` // -180..+180
	Caption       string     `json:"caption" gorm:"size:280"`
	CoverImageURL string     `json:"imageUrl,omitempty"`
	Photos        []Photo    `json:"photos,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Reactions     []Reaction `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// CreatePinRequest defines the multipart form fields for creating a pin.
// The cover image and extra photos arrive as file parts, not form values.
type CreatePinRequest struct {
	City    string `json:"city" form:"city" validate:"omitempty,max=100"`
	State   string `json:"state" form:"state" validate:"omitempty,max=120"`
	Country string `json:"country" form:"country" validate:"omitempty,max=100"`
	Caption string `json:"caption" form:"caption" validate:"omitempty,max=280"`
}

// UpdatePinRequest defines the multipart form fields for editing a pin.
// PhotosToDelete is a comma-separated list of photo IDs to remove.
type UpdatePinRequest struct {
	City           string `json:"city" form:"city" validate:"omitempty,max=100"`
	State          string `json:"state" form:"state" validate:"omitempty,max=120"`
	Country        string `json:"country" form:"country" validate:"omitempty,max=100"`
	Caption        string `json:"caption" form:"caption" validate:"omitempty,max=280"`
	PhotosToDelete string `json:"photos_to_delete" form:"photos_to_delete"`
}
