package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tour-admin-backend/models"
)

func TestReplaceGalleryImagesPreservesOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTourContentService(db)
	tour := createTour(t, db, "Gallery Tour", "gallery-tour")

	overview := models.TourImage{
		TourID:   tour.ID,
		ImageURL: "hero.jpg",
		Section:  models.ImageSectionOverview,
		IsActive: true,
	}
	assert.NoError(t, db.Create(&overview).Error)
	stale := models.TourImage{
		TourID:   tour.ID,
		ImageURL: "old.jpg",
		Section:  models.ImageSectionGallery,
		IsActive: true,
	}
	assert.NoError(t, db.Create(&stale).Error)

	err := svc.ReplaceGalleryImages(tour.ID, []models.GalleryImage{
		{URL: "a.jpg"},
		{URL: "b.jpg", Section: models.ImageSectionItinerary},
	})
	assert.NoError(t, err)

	var rows []models.TourImage
	db.Where("tour_id = ?", tour.ID).Order("display_order ASC").Find(&rows)
	assert.Len(t, rows, 3)

	var overviewRows []models.TourImage
	db.Where("tour_id = ? AND section = ?", tour.ID, models.ImageSectionOverview).Find(&overviewRows)
	assert.Len(t, overviewRows, 1)
	assert.Equal(t, "hero.jpg", overviewRows[0].ImageURL)

	var galleryRows []models.TourImage
	db.Where("tour_id = ? AND section IN ?", tour.ID,
		[]string{models.ImageSectionGallery, models.ImageSectionItinerary}).
		Order("display_order ASC").Find(&galleryRows)
	assert.Len(t, galleryRows, 2)
	assert.Equal(t, "a.jpg", galleryRows[0].ImageURL)
	assert.Equal(t, 1, galleryRows[0].DisplayOrder)
	assert.Equal(t, models.ImageSectionGallery, galleryRows[0].Section)
	assert.Equal(t, "b.jpg", galleryRows[1].ImageURL)
	assert.Equal(t, 2, galleryRows[1].DisplayOrder)
	assert.Equal(t, models.ImageSectionItinerary, galleryRows[1].Section)
}

func TestReplaceGalleryImagesEmptyListClears(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTourContentService(db)
	tour := createTour(t, db, "Cleared", "cleared")

	assert.NoError(t, svc.ReplaceGalleryImages(tour.ID, []models.GalleryImage{{URL: "a.jpg"}}))
	assert.NoError(t, svc.ReplaceGalleryImages(tour.ID, nil))

	var count int64
	db.Model(&models.TourImage{}).Where("tour_id = ?", tour.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReplaceGalleryImagesRequiresTourID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTourContentService(db)

	assert.Error(t, svc.ReplaceGalleryImages("", nil))
}

func TestUpsertOverviewImage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTourContentService(db)
	tour := createTour(t, db, "Overview Tour", "overview-tour")

	assert.NoError(t, svc.UpsertOverviewImage(tour.ID, "first.jpg"))

	var rows []models.TourImage
	db.Where("tour_id = ? AND section = ?", tour.ID, models.ImageSectionOverview).Find(&rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "first.jpg", rows[0].ImageURL)

	// Update keeps a single row.
	assert.NoError(t, svc.UpsertOverviewImage(tour.ID, "second.jpg"))
	rows = nil
	db.Where("tour_id = ? AND section = ?", tour.ID, models.ImageSectionOverview).Find(&rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, "second.jpg", rows[0].ImageURL)

	// Empty URL removes the row.
	assert.NoError(t, svc.UpsertOverviewImage(tour.ID, ""))
	rows = nil
	db.Where("tour_id = ? AND section = ?", tour.ID, models.ImageSectionOverview).Find(&rows)
	assert.Len(t, rows, 0)
}

func TestReplaceSections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTourContentService(db)
	tour := createTour(t, db, "Sectioned", "sectioned")

	days := []models.ItineraryDay{{Day: 1, Title: "Arrival"}}
	assert.NoError(t, svc.ReplaceSections(tour.ID, "<p>Welcome</p>", days))

	sections, err := svc.SectionsForTour(tour.ID)
	assert.NoError(t, err)
	assert.Len(t, sections, 2)
	assert.Equal(t, models.SectionTypeOverview, sections[0].Type)
	assert.JSONEq(t, `{"html":"<p>Welcome</p>"}`, string(sections[0].Content))
	assert.Equal(t, models.SectionTypeItinerary, sections[1].Type)
	assert.JSONEq(t, `[{"day":1,"title":"Arrival","description":""}]`, string(sections[1].Content))

	// Replacing again rewrites rather than appends.
	assert.NoError(t, svc.ReplaceSections(tour.ID, "<p>Updated</p>", nil))
	sections, err = svc.SectionsForTour(tour.ID)
	assert.NoError(t, err)
	assert.Len(t, sections, 2)
	assert.JSONEq(t, `{"html":"<p>Updated</p>"}`, string(sections[0].Content))
}
