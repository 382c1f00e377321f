package services

import (
	"encoding/json"
	"errors"

	"tour-admin-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TourContentService owns the dependent rows a full save fans out to: the
// tour_images gallery rows and the overview/itinerary tour_sections. Replace
// operations are delete-then-insert, not diff-based.
type TourContentService struct {
	DB *gorm.DB
}

func NewTourContentService(db *gorm.DB) *TourContentService {
	return &TourContentService{DB: db}
}

// ReplaceGalleryImages wipes the gallery and itinerary image rows for a tour
// and reinserts the current list with recomputed order. Overview rows are
// preserved so replacing the gallery can never drop the main image.
func (s *TourContentService) ReplaceGalleryImages(tourID string, images []models.GalleryImage) error {
	if tourID == "" {
		return errors.New("tour id required")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ? AND section IN ?", tourID,
			[]string{models.ImageSectionGallery, models.ImageSectionItinerary}).
			Delete(&models.TourImage{}).Error; err != nil {
			return err
		}

		if len(images) == 0 {
			return nil
		}

		rows := make([]models.TourImage, 0, len(images))
		for i, img := range images {
			section := img.Section
			if section == "" {
				section = models.ImageSectionGallery
			}
			rows = append(rows, models.TourImage{
				TourID:       tourID,
				ImageURL:     img.URL,
				Section:      section,
				DisplayOrder: i + 1,
				IsActive:     true,
			})
		}
		return tx.Create(&rows).Error
	})
}

// UpsertOverviewImage keeps the single overview image row consistent with the
// featured image URL. An empty URL removes the row.
func (s *TourContentService) UpsertOverviewImage(tourID, featuredImageURL string) error {
	if tourID == "" {
		return errors.New("tour id required")
	}

	if featuredImageURL == "" {
		return s.DB.Where("tour_id = ? AND section = ?", tourID, models.ImageSectionOverview).
			Delete(&models.TourImage{}).Error
	}

	var row models.TourImage
	err := s.DB.Where("tour_id = ? AND section = ?", tourID, models.ImageSectionOverview).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.TourImage{
			TourID:       tourID,
			ImageURL:     featuredImageURL,
			Section:      models.ImageSectionOverview,
			DisplayOrder: 1,
			IsActive:     true,
		}
		return s.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return s.DB.Model(&row).Update("image_url", featuredImageURL).Error
}

// ReplaceSections rewrites the overview and itinerary tour_sections rows from
// the current form content.
func (s *TourContentService) ReplaceSections(tourID, overviewHTML string, itinerary []models.ItineraryDay) error {
	if tourID == "" {
		return errors.New("tour id required")
	}

	overviewContent, err := json.Marshal(map[string]string{"html": overviewHTML})
	if err != nil {
		return err
	}
	itineraryContent, err := json.Marshal(itinerary)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ? AND type IN ?", tourID,
			[]string{models.SectionTypeOverview, models.SectionTypeItinerary}).
			Delete(&models.TourSection{}).Error; err != nil {
			return err
		}

		rows := []models.TourSection{
			{
				TourID:    tourID,
				Type:      models.SectionTypeOverview,
				Content:   datatypes.JSON(overviewContent),
				Order:     1,
				IsVisible: true,
			},
			{
				TourID:    tourID,
				Type:      models.SectionTypeItinerary,
				Content:   datatypes.JSON(itineraryContent),
				Order:     2,
				IsVisible: true,
			},
		}
		return tx.Create(&rows).Error
	})
}

// SectionsForTour returns the stored content sections in display order.
func (s *TourContentService) SectionsForTour(tourID string) ([]models.TourSection, error) {
	var rows []models.TourSection
	err := s.DB.Where("tour_id = ?", tourID).Order("section_order ASC").Find(&rows).Error
	return rows, err
}
