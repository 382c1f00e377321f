package services

import (
	"tour-admin-backend/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Order("display_order ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetActive() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetByID(id string) (models.Category, error) {
	var category models.Category
	err := s.DB.First(&category, "id = ?", id).Error
	return category, err
}

func (s *CategoryService) Create(category *models.Category) error {
	return s.DB.Create(category).Error
}

func (s *CategoryService) Update(category *models.Category) error {
	return s.DB.Model(&models.Category{}).
		Where("id = ?", category.ID).
		Select("*").Omit("id", "created_at").
		Updates(category).Error
}

func (s *CategoryService) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CategoryGroup is one parent label with its member categories, for the
// grouped category-select dropdown. The parent label is matched against
// category names as plain text, two levels only.
type CategoryGroup struct {
	Parent     string            `json:"parent"`
	Categories []models.Category `json:"categories"`
}

func (s *CategoryService) GetGrouped() ([]CategoryGroup, error) {
	categories, err := s.GetActive()
	if err != nil {
		return nil, err
	}

	groups := make([]CategoryGroup, 0)
	index := map[string]int{}
	ungrouped := CategoryGroup{Parent: ""}

	for _, cat := range categories {
		label := cat.ParentCategory
		if label == "" {
			ungrouped.Categories = append(ungrouped.Categories, cat)
			continue
		}
		i, ok := index[label]
		if !ok {
			groups = append(groups, CategoryGroup{Parent: label})
			i = len(groups) - 1
			index[label] = i
		}
		groups[i].Categories = append(groups[i].Categories, cat)
	}

	if len(ungrouped.Categories) > 0 {
		groups = append(groups, ungrouped)
	}
	return groups, nil
}
