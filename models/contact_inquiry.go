package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusNew       = "new"
	ContactStatusResponded = "responded"
	ContactStatusArchived  = "archived"
)

type ContactInquiry struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:150;not null" json:"email"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status      string    `gorm:"size:20;default:new" json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (q *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
