package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tour-admin-backend/models"
)

func TestListTourInquiriesFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInquiryService(db)

	assert.NoError(t, db.Create(&models.TourInquiry{
		Name: "Asha", Email: "asha@example.com", Message: "Dates?",
		Status: models.InquiryStatusNew, SubmittedAt: time.Now(),
	}).Error)
	assert.NoError(t, db.Create(&models.TourInquiry{
		Name: "Ravi", Email: "ravi@example.com", Message: "Price?",
		Status: models.InquiryStatusResolved, SubmittedAt: time.Now(),
	}).Error)

	all, err := svc.ListTourInquiries("")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.ListTourInquiries(models.InquiryStatusNew)
	assert.NoError(t, err)
	assert.Len(t, open, 1)
	assert.Equal(t, "Asha", open[0].Name)
}

func TestUpdateTourInquiryStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInquiryService(db)

	inquiry := models.TourInquiry{
		Name: "Asha", Email: "asha@example.com", Message: "Dates?",
		Status: models.InquiryStatusNew, SubmittedAt: time.Now(),
	}
	assert.NoError(t, db.Create(&inquiry).Error)

	err := svc.UpdateTourInquiryStatus(inquiry.ID, models.InquiryStatusInProgress, "Called back")
	assert.NoError(t, err)

	var saved models.TourInquiry
	assert.NoError(t, db.First(&saved, "id = ?", inquiry.ID).Error)
	assert.Equal(t, models.InquiryStatusInProgress, saved.Status)
	assert.Equal(t, "Called back", saved.AdminNotes)
}

func TestUpdateTourInquiryRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInquiryService(db)

	err := svc.UpdateTourInquiryStatus("any", "responded", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTourInquiryMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInquiryService(db)

	err := svc.UpdateTourInquiryStatus("missing", models.InquiryStatusClosed, "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Each variant validates against its own vocabulary: "contacted" belongs to
// day-out inquiries, "responded" to contact inquiries.
func TestStatusVocabulariesAreDistinct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInquiryService(db)

	tour := models.TourInquiry{
		Name: "A", Email: "a@example.com", Message: "m",
		Status: models.InquiryStatusNew, SubmittedAt: time.Now(),
	}
	assert.NoError(t, db.Create(&tour).Error)
	assert.ErrorIs(t, svc.UpdateTourInquiryStatus(tour.ID, models.DayOutStatusContacted, ""), ErrInvalidStatus)

	pkg := createTour(t, db, "Day Out", "day-out-pkg")
	dayOut := models.DayOutInquiry{
		Name: "B", MobileNo: "123", PackageID: pkg.ID,
		Status: models.DayOutStatusNew, SubmittedAt: time.Now(),
	}
	assert.NoError(t, db.Create(&dayOut).Error)
	assert.ErrorIs(t, svc.UpdateDayOutInquiryStatus(dayOut.ID, models.ContactStatusResponded), ErrInvalidStatus)
	assert.NoError(t, svc.UpdateDayOutInquiryStatus(dayOut.ID, models.DayOutStatusContacted))

	contact := models.ContactInquiry{
		Name: "C", Email: "c@example.com", Message: "m",
		Status: models.ContactStatusNew, SubmittedAt: time.Now(),
	}
	assert.NoError(t, db.Create(&contact).Error)
	assert.ErrorIs(t, svc.UpdateContactInquiryStatus(contact.ID, models.InquiryStatusResolved), ErrInvalidStatus)
	assert.NoError(t, svc.UpdateContactInquiryStatus(contact.ID, models.ContactStatusArchived))
}
