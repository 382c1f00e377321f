package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ElementKeyHomepageHero is the site_content row edited by the homepage
// settings page.
const ElementKeyHomepageHero = "homepage_hero_banner"

// SiteContent is a keyed JSON blob for editable page fragments.
type SiteContent struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	ElementKey   string         `gorm:"uniqueIndex;size:100;not null" json:"element_key"`
	ContentValue datatypes.JSON `gorm:"not null" json:"content_value"`
	UpdatedAt    time.Time      `json:"updated_at"`
	UpdatedBy    string         `gorm:"size:36" json:"updated_by,omitempty"`
}

func (s *SiteContent) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// HeroBannerContent is the shape stored under homepage_hero_banner.
type HeroBannerContent struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Images   []GalleryImage `json:"images"`
}
