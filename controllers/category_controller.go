package controllers

import (
	"errors"
	"net/http"
	"strings"

	"tour-admin-backend/models"
	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

type categoryPayload struct {
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Description    string  `json:"description"`
	ParentCategory string  `json:"parent_category"`
	ParentID       *string `json:"parent_id"`
	ImageURL       string  `json:"image_url"`
	DisplayOrder   int     `json:"display_order"`
	IsActive       *bool   `json:"is_active"`
}

// ----------------------------------------------------
// 1. List Categories (GET /api/categories)
// ----------------------------------------------------

func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.categories.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

// Grouped returns active categories bucketed by parent label for the
// category-select dropdown.
func (cc *CategoryController) Grouped(c *gin.Context) {
	groups, err := cc.categories.GetGrouped()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load categories")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, groups)
}

// ----------------------------------------------------
// 2. Create Category (POST /api/categories)
// ----------------------------------------------------

func (cc *CategoryController) Create(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(payload.Slug) == "" {
		payload.Slug = utils.GenerateSlug(payload.Name)
	}

	// New categories default to active when the payload leaves the flag out.
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	category := models.Category{
		Name:           payload.Name,
		Slug:           payload.Slug,
		Description:    payload.Description,
		ParentCategory: payload.ParentCategory,
		ParentID:       payload.ParentID,
		ImageURL:       payload.ImageURL,
		DisplayOrder:   payload.DisplayOrder,
		IsActive:       active,
	}

	if err := cc.categories.Create(&category); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "a category with this slug already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, category)
}

// ----------------------------------------------------
// 3. Update Category (PUT /api/categories/:id)
// ----------------------------------------------------

func (cc *CategoryController) Update(c *gin.Context) {
	id := c.Param("id")

	existing, err := cc.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "category not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	existing.Name = strings.TrimSpace(payload.Name)
	existing.Slug = payload.Slug
	existing.Description = payload.Description
	existing.ParentCategory = payload.ParentCategory
	existing.ParentID = payload.ParentID
	existing.ImageURL = payload.ImageURL
	existing.DisplayOrder = payload.DisplayOrder
	if payload.IsActive != nil {
		existing.IsActive = *payload.IsActive
	}

	if existing.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	if strings.TrimSpace(existing.Slug) == "" {
		existing.Slug = utils.GenerateSlug(existing.Name)
	}

	if err := cc.categories.Update(&existing); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, existing)
}

// ----------------------------------------------------
// 4. Delete Category (DELETE /api/categories/:id)
// ----------------------------------------------------

func (cc *CategoryController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := cc.categories.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "category not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete category")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "category deleted"})
}
