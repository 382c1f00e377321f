package services

import (
	"encoding/json"
	"errors"

	"tour-admin-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SiteContentService struct {
	DB *gorm.DB
}

func NewSiteContentService(db *gorm.DB) *SiteContentService {
	return &SiteContentService{DB: db}
}

func (s *SiteContentService) GetByKey(elementKey string) (models.SiteContent, error) {
	var row models.SiteContent
	err := s.DB.First(&row, "element_key = ?", elementKey).Error
	return row, err
}

// UpdateByKey replaces the content blob for a key, creating the row when it
// doesn't exist yet.
func (s *SiteContentService) UpdateByKey(elementKey string, value interface{}, updatedBy string) (models.SiteContent, error) {
	blob, err := json.Marshal(value)
	if err != nil {
		return models.SiteContent{}, err
	}

	var row models.SiteContent
	err = s.DB.First(&row, "element_key = ?", elementKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.SiteContent{
			ElementKey:   elementKey,
			ContentValue: datatypes.JSON(blob),
			UpdatedBy:    updatedBy,
		}
		if err := s.DB.Create(&row).Error; err != nil {
			return models.SiteContent{}, err
		}
		return row, nil
	}
	if err != nil {
		return models.SiteContent{}, err
	}

	updates := map[string]interface{}{
		"content_value": datatypes.JSON(blob),
		"updated_by":    updatedBy,
	}
	if err := s.DB.Model(&row).Updates(updates).Error; err != nil {
		return models.SiteContent{}, err
	}
	return s.GetByKey(elementKey)
}

// GetHeroBanner decodes the homepage hero row into its typed shape,
// normalizing a missing row to empty content.
func (s *SiteContentService) GetHeroBanner() (models.HeroBannerContent, error) {
	var content models.HeroBannerContent
	row, err := s.GetByKey(models.ElementKeyHomepageHero)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HeroBannerContent{Images: []models.GalleryImage{}}, nil
	}
	if err != nil {
		return content, err
	}
	if err := json.Unmarshal(row.ContentValue, &content); err != nil {
		return content, err
	}
	if content.Images == nil {
		content.Images = []models.GalleryImage{}
	}
	return content, nil
}
