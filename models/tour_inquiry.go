package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusClosed     = "closed"
)

// TourInquiry is a booking inquiry submitted against a specific tour.
// Read-mostly from the admin's perspective, mutated only via status
// transitions and admin notes.
type TourInquiry struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name          string `gorm:"size:150;not null" json:"name"`
	Email         string `gorm:"size:150;not null" json:"email"`
	ContactNumber string `gorm:"size:50" json:"contact_number,omitempty"`

	TourID  *string `gorm:"size:36;index" json:"tour_id,omitempty"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Status  string  `gorm:"size:20;default:new" json:"status"`

	AdminNotes     string     `gorm:"type:text" json:"admin_notes,omitempty"`
	Nationality    string     `gorm:"size:100" json:"nationality,omitempty"`
	DateOfTravel   *time.Time `json:"date_of_travel,omitempty"`
	NumberOfPeople string     `gorm:"size:20" json:"number_of_people,omitempty"`
	NumberOfKids   string     `gorm:"size:20" json:"number_of_kids,omitempty"`
	NumberOfRooms  *int       `json:"number_of_rooms,omitempty"`
	HotelCategory  string     `gorm:"size:20" json:"hotel_category,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tour *Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
}

func (q *TourInquiry) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
