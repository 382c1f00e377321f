package services

import (
	"errors"
	"fmt"

	"tour-admin-backend/models"

	"gorm.io/gorm"
)

// ErrInvalidStatus marks a status transition outside a variant's vocabulary.
var ErrInvalidStatus = errors.New("invalid status")

// InquiryService covers the four inquiry variants. They are read-mostly for
// the admin; the only mutations are status transitions and admin notes.
type InquiryService struct {
	DB *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{DB: db}
}

var tourInquiryStatuses = []string{
	models.InquiryStatusNew,
	models.InquiryStatusInProgress,
	models.InquiryStatusResolved,
	models.InquiryStatusClosed,
}

var dayOutStatuses = []string{
	models.DayOutStatusNew,
	models.DayOutStatusContacted,
	models.DayOutStatusClosed,
}

var contactStatuses = []string{
	models.ContactStatusNew,
	models.ContactStatusResponded,
	models.ContactStatusArchived,
}

func statusAllowed(status string, allowed []string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}

// ---------------- Tour inquiries ----------------

func (s *InquiryService) ListTourInquiries(status string) ([]models.TourInquiry, error) {
	q := s.DB.Preload("Tour").Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.TourInquiry
	err := q.Find(&rows).Error
	return rows, err
}

func (s *InquiryService) UpdateTourInquiryStatus(id, status, adminNotes string) error {
	if !statusAllowed(status, tourInquiryStatuses) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	updates := map[string]interface{}{"status": status}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}
	result := s.DB.Model(&models.TourInquiry{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------------- Day-out inquiries ----------------

func (s *InquiryService) ListDayOutInquiries(status string) ([]models.DayOutInquiry, error) {
	q := s.DB.Preload("Package").Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.DayOutInquiry
	err := q.Find(&rows).Error
	return rows, err
}

func (s *InquiryService) UpdateDayOutInquiryStatus(id, status string) error {
	if !statusAllowed(status, dayOutStatuses) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	result := s.DB.Model(&models.DayOutInquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------------- Contact inquiries ----------------

func (s *InquiryService) ListContactInquiries(status string) ([]models.ContactInquiry, error) {
	q := s.DB.Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.ContactInquiry
	err := q.Find(&rows).Error
	return rows, err
}

func (s *InquiryService) UpdateContactInquiryStatus(id, status string) error {
	if !statusAllowed(status, contactStatuses) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	result := s.DB.Model(&models.ContactInquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------------- Quick enquiries ----------------

func (s *InquiryService) ListQuickEnquiries(status string) ([]models.QuickEnquiry, error) {
	q := s.DB.Order("submitted_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []models.QuickEnquiry
	err := q.Find(&rows).Error
	return rows, err
}

func (s *InquiryService) UpdateQuickEnquiryStatus(id, status string) error {
	result := s.DB.Model(&models.QuickEnquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
