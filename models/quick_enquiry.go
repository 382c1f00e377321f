package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuickEnquiry is the short call-me-back form from the public site.
type QuickEnquiry struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name     string `gorm:"size:150;not null" json:"name"`
	MobileNo string `gorm:"size:50;not null" json:"mobile_no"`

	Destination     string     `gorm:"size:255" json:"destination,omitempty"`
	PreferredDate   *time.Time `json:"preferred_date,omitempty"`
	NumberOfPeople  *int       `json:"number_of_people,omitempty"`
	SpecialComments string     `gorm:"type:text" json:"special_comments,omitempty"`

	Status      string    `gorm:"size:20;default:new" json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (q *QuickEnquiry) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
