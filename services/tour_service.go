package services

import (
	"errors"
	"strings"

	"tour-admin-backend/models"

	"gorm.io/gorm"
)

// TourService wraps *gorm.DB for tour record reads and writes. It is the only
// path the editor uses to touch the tours table.
type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

// TourFilter narrows List results. Zero values mean "no filter".
type TourFilter struct {
	Status          string
	CategoryID      string
	IsDayOutPackage *bool
	PublishedOnly   bool
}

func (s *TourService) GetByID(id string) (models.Tour, error) {
	var tour models.Tour
	err := s.DB.Preload("Category").First(&tour, "id = ?", id).Error
	return tour, err
}

func (s *TourService) GetBySlug(slug string) (models.Tour, error) {
	var tour models.Tour
	err := s.DB.First(&tour, "slug = ?", slug).Error
	return tour, err
}

func (s *TourService) List(filter TourFilter) ([]models.Tour, error) {
	q := s.DB.Preload("Category").Order("display_order ASC, created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsDayOutPackage != nil {
		q = q.Where("is_day_out_package = ?", *filter.IsDayOutPackage)
	}
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var tours []models.Tour
	err := q.Find(&tours).Error
	return tours, err
}

// Insert creates the record and returns the generated id.
func (s *TourService) Insert(tour *models.Tour) (string, error) {
	if err := s.DB.Create(tour).Error; err != nil {
		return "", err
	}
	return tour.ID, nil
}

// Update persists the full column set for an existing tour. Select("*") so
// cleared fields (unset category, false flags) are written too.
func (s *TourService) Update(tour *models.Tour) error {
	if tour.ID == "" {
		return errors.New("tour id required for update")
	}
	return s.DB.Model(&models.Tour{}).
		Where("id = ?", tour.ID).
		Select("*").Omit("id", "created_at", "deleted_at").
		Updates(tour).Error
}

// UpdateFields applies a partial column map; the autosave path uses this for
// its reduced field subset.
func (s *TourService) UpdateFields(id string, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "deleted_at")
	return s.DB.Model(&models.Tour{}).Where("id = ?", id).Updates(fields).Error
}

func (s *TourService) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Tour{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CheckSlugAvailable reports whether slug is unused by any tour other than
// excludingTourID. Empty excludingTourID means a brand-new tour.
func (s *TourService) CheckSlugAvailable(slug, excludingTourID string) (bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, errors.New("slug is empty")
	}

	q := s.DB.Model(&models.Tour{}).Where("slug = ?", slug)
	if excludingTourID != "" {
		q = q.Where("id <> ?", excludingTourID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
