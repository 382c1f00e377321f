package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ImageSectionGallery   = "gallery"
	ImageSectionItinerary = "itinerary"
	ImageSectionOverview  = "overview"
)

// TourImage is a persisted gallery row. The full-save workflow replaces the
// gallery/itinerary rows for a tour wholesale but preserves overview rows.
type TourImage struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	TourID string `gorm:"size:36;index;not null" json:"tour_id"`

	ImageURL     string `gorm:"size:500;not null" json:"image_url"`
	Caption      string `gorm:"size:255" json:"caption,omitempty"`
	AltText      string `gorm:"size:255" json:"alt_text,omitempty"`
	Section      string `gorm:"size:50;index" json:"section,omitempty"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
	IsActive     bool   `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

func (img *TourImage) BeforeCreate(tx *gorm.DB) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	return nil
}
