package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:150;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:150;not null" json:"slug"`

	Description string `gorm:"type:text" json:"description,omitempty"`

	// ParentCategory is a plain label matched against other categories'
	// Name, not a foreign key. Used only to group the category dropdown.
	ParentCategory string  `gorm:"column:parent_category;size:100" json:"parent_category,omitempty"`
	ParentID       *string `gorm:"column:parent_id;size:36" json:"parent_id,omitempty"`

	ImageURL     string `gorm:"size:500" json:"image_url,omitempty"`
	DisplayOrder int    `gorm:"column:display_order;default:0" json:"display_order"`

	// A default:true tag here would make gorm overwrite an explicit false
	// on insert, since false is the zero value. Callers set the flag.
	IsActive bool `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return nil
}
