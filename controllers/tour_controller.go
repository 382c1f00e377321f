package controllers

import (
	"errors"
	"net/http"
	"strings"

	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TourController struct {
	tours    *services.TourService
	content  *services.TourContentService
	renderer *services.ContentRenderService
}

func NewTourController(tours *services.TourService, content *services.TourContentService, renderer *services.ContentRenderService) *TourController {
	return &TourController{tours: tours, content: content, renderer: renderer}
}

// ----------------------------------------------------
// 1. List Tours (GET /api/tours)
// ----------------------------------------------------

func (tc *TourController) List(c *gin.Context) {
	filter := services.TourFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
	}

	if raw := c.Query("is_day_out_package"); raw != "" {
		dayOut := raw == "true" || raw == "1"
		filter.IsDayOutPackage = &dayOut
	}
	if c.Query("published") == "true" {
		filter.PublishedOnly = true
	}

	tours, err := tc.tours.List(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tours)
}

// ----------------------------------------------------
// 2. Get Tour (GET /api/tours/:id)
// ----------------------------------------------------

func (tc *TourController) Get(c *gin.Context) {
	id := c.Param("id")

	tour, err := tc.tours.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, tour)
}

// ----------------------------------------------------
// 3. Delete Tour (DELETE /api/tours/:id)
// ----------------------------------------------------

func (tc *TourController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := tc.tours.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete tour")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "tour deleted"})
}

// ----------------------------------------------------
// 4. Slug check (GET /api/tours/slug-check?slug=&exclude=)
// ----------------------------------------------------

// SlugCheck is the standalone uniqueness lookup used on field blur. The save
// path runs its own synchronous re-check regardless.
func (tc *TourController) SlugCheck(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "unknown", "message": "Slug is required"})
		return
	}

	available, err := tc.tours.CheckSlugAvailable(slug, c.Query("exclude"))
	if err != nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "unavailable", "message": "Unable to validate slug"})
		return
	}
	if !available {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "unavailable", "message": "Slug is already in use"})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "available", "message": "Slug is available"})
}

// ----------------------------------------------------
// 5. Preview (GET /api/tours/:id/preview)
// ----------------------------------------------------

// Preview renders the stored overview to HTML together with the content
// sections, as the public detail page would compose them.
func (tc *TourController) Preview(c *gin.Context) {
	id := c.Param("id")

	tour, err := tc.tours.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	html, err := tc.renderer.RenderOverview(tour.Overview)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render overview")
		return
	}

	sections, err := tc.content.SectionsForTour(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load sections")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tour":          tour,
		"overview_html": html,
		"sections":      sections,
	})
}
