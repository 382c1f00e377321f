package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SectionTypeOverview  = "overview"
	SectionTypeItinerary = "itinerary"
)

// TourSection holds structured page content for a tour: the rich-text
// overview and the itinerary list, one row per type.
type TourSection struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	TourID string `gorm:"size:36;index;not null" json:"tour_id"`

	Type      string         `gorm:"size:50;not null" json:"type"`
	Title     string         `gorm:"size:255" json:"title,omitempty"`
	Content   datatypes.JSON `json:"content,omitempty"`
	Order     int            `gorm:"column:section_order" json:"order"`
	IsVisible bool           `gorm:"column:is_visible" json:"is_visible"`

	CreatedBy string    `gorm:"size:36" json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *TourSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
