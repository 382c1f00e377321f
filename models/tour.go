package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TourStatusDraft     = "draft"
	TourStatusPublished = "published"
	TourStatusArchived  = "archived"
)

// DefaultDisplayOrder is the sentinel used for tours that have not been
// ordered explicitly yet. Lower numbers appear first.
const DefaultDisplayOrder = 999

type Tour struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title string `gorm:"size:200;not null" json:"title"`
	Slug  string `gorm:"uniqueIndex;size:200;not null" json:"slug"`

	// CategoryID is nullable so a tour without a category doesn't try to
	// insert an empty FK value.
	CategoryID *string `gorm:"size:36;index" json:"category_id,omitempty"`

	ShortDescription string `gorm:"size:200" json:"short_description"`
	Description      string `gorm:"type:text" json:"description"`
	Overview         string `gorm:"type:text" json:"overview"`
	FeaturedImageURL string `gorm:"size:500" json:"featured_image_url"`

	// Ordered nested collections, stored as JSON the same way the tours
	// table kept them upstream.
	Itinerary        datatypes.JSON `gorm:"column:itinerary" json:"itinerary,omitempty"`
	ImageGalleryURLs datatypes.JSON `gorm:"column:image_gallery_urls" json:"image_gallery_urls,omitempty"`

	Price           *float64 `json:"price,omitempty"`
	DurationDays    *int     `gorm:"column:duration_days" json:"duration_days,omitempty"`
	MaxGroupSize    *int     `gorm:"column:max_group_size" json:"max_group_size,omitempty"`
	DifficultyLevel string   `gorm:"size:50" json:"difficulty_level,omitempty"`

	// No column default here: gorm would silently swap an explicit 0 for
	// the default on insert. Callers set DefaultDisplayOrder themselves.
	DisplayOrder    int      `gorm:"column:display_order" json:"display_order"`
	IsFeatured      bool     `gorm:"column:is_featured;default:false" json:"is_featured"`
	IsDayOutPackage bool     `gorm:"column:is_day_out_package;default:false" json:"is_day_out_package"`
	IsPublished     bool     `gorm:"column:is_published;default:false" json:"is_published"`
	Status          string   `gorm:"size:20;default:draft" json:"status"`
	Rating          *float64 `json:"rating,omitempty"`
	ReviewCount     int      `gorm:"column:review_count;default:0" json:"review_count"`
	Location        string   `gorm:"size:255" json:"location"`

	MetaTitle       string `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:500" json:"meta_description,omitempty"`

	CreatedBy string         `gorm:"size:36" json:"created_by,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ItineraryDay is one entry of a tour itinerary. Day numbers are 1-based and
// contiguous; callers renumber on every insert/remove/move.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CropRect is the optional crop selection saved with a gallery image.
type CropRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GalleryImage is one entry of a tour's image gallery. Order is 1-based and
// contiguous, same invariant as itinerary days.
type GalleryImage struct {
	URL         string    `json:"url"`
	Order       int       `json:"order"`
	Section     string    `json:"section,omitempty"`
	Crop        *CropRect `json:"crop,omitempty"`
	AspectRatio *float64  `json:"aspect_ratio,omitempty"`
}
