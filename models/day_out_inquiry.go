package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DayOutStatusNew       = "new"
	DayOutStatusContacted = "contacted"
	DayOutStatusClosed    = "closed"
)

// DayOutInquiry targets a day-out package (a tour flagged is_day_out_package).
type DayOutInquiry struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name     string `gorm:"size:150;not null" json:"name"`
	MobileNo string `gorm:"size:50;not null" json:"mobile_no"`

	PackageID       string     `gorm:"size:36;index;not null" json:"package_id"`
	Destination     string     `gorm:"size:255" json:"destination,omitempty"`
	PreferredDate   *time.Time `json:"preferred_date,omitempty"`
	NumberOfPeople  int        `json:"number_of_people"`
	SpecialComments string     `gorm:"type:text" json:"special_comments,omitempty"`

	Status      string    `gorm:"size:20;default:new" json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`

	Package *Tour `gorm:"foreignKey:PackageID" json:"package,omitempty"`
}

func (q *DayOutInquiry) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
