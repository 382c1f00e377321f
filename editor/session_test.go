package editor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tour-admin-backend/models"
	"tour-admin-backend/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&models.Tour{}, &models.TourImage{}, &models.TourSection{}, &models.Category{})
	return db
}

// newTestManager wires a manager against the real persistence gateway with a
// long autosave interval so the background ticker never fires mid-test.
func newTestManager(db *gorm.DB) *Manager {
	tours := services.NewTourService(db)
	content := services.NewTourContentService(db)
	return NewManager(tours, content, time.Hour)
}

func mustJSON(t *testing.T, v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return datatypes.JSON(raw)
}

func createTestTour(t *testing.T, db *gorm.DB, title, slug string) *models.Tour {
	tour := &models.Tour{
		Title:        title,
		Slug:         slug,
		DisplayOrder: models.DefaultDisplayOrder,
		IsPublished:  true,
		Status:       models.TourStatusPublished,
	}
	if err := db.Create(tour).Error; err != nil {
		t.Fatalf("create tour: %v", err)
	}
	return tour
}

func TestOpenBlankSession(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	s, err := m.Open("")
	assert.NoError(t, err)
	assert.Empty(t, s.TourID())
	assert.False(t, s.Dirty())

	state := s.State()
	assert.Empty(t, state.Title)
	assert.Equal(t, "999", state.DisplayOrder)
	assert.NotNil(t, state.Itinerary)
	assert.Len(t, state.Itinerary, 0)
	assert.NotNil(t, state.Gallery)
}

func TestOpenExistingTour(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	price := 249.5
	rating := 4.5
	duration := 3
	tour := &models.Tour{
		Title:        "Backwater Cruise",
		Slug:         "backwater-cruise",
		Price:        &price,
		Rating:       &rating,
		DurationDays: &duration,
		DisplayOrder: 5,
		Itinerary: mustJSON(t, []models.ItineraryDay{
			{Day: 1, Title: "Arrival"},
			{Day: 2, Title: "Cruise"},
		}),
	}
	assert.NoError(t, db.Create(tour).Error)

	s, err := m.Open(tour.ID)
	assert.NoError(t, err)
	assert.Equal(t, tour.ID, s.TourID())
	assert.False(t, s.Dirty())

	state := s.State()
	assert.Equal(t, "Backwater Cruise", state.Title)
	assert.Equal(t, "249.5", state.Price)
	assert.Equal(t, "4.5", state.Rating)
	assert.Equal(t, "3", state.DurationDays)
	assert.Equal(t, "5", state.DisplayOrder)
	assert.Len(t, state.Itinerary, 2)
	assert.Equal(t, "Cruise", state.Itinerary[1].Title)
}

func TestOpenMissingTour(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	_, err := m.Open("no-such-id")
	assert.Error(t, err)
	assert.True(t, IsTourMissing(err))
}

func TestSetFieldMarksDirty(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	s, _ := m.Open("")
	assert.False(t, s.Dirty())

	assert.NoError(t, s.SetField("title", "Munnar Hills"))
	assert.True(t, s.Dirty())
	assert.Equal(t, "Munnar Hills", s.State().Title)
}

func TestSetFieldRevertReturnsClean(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	tour := createTestTour(t, db, "Taj Tour", "taj-tour")
	s, _ := m.Open(tour.ID)

	assert.NoError(t, s.SetField("title", "Taj Mahal Tour"))
	assert.True(t, s.Dirty())

	assert.NoError(t, s.SetField("title", "Taj Tour"))
	assert.False(t, s.Dirty())
}

func TestTitleDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	assert.NoError(t, s.SetField("title", "Backwater Cruise"))
	assert.Equal(t, "backwater-cruise", s.State().Slug)

	// The slug keeps tracking the title until it is edited directly.
	assert.NoError(t, s.SetField("title", "Backwater Cruise Deluxe"))
	assert.Equal(t, "backwater-cruise-deluxe", s.State().Slug)

	result, err := s.Save()
	assert.NoError(t, err)

	var saved models.Tour
	assert.NoError(t, db.First(&saved, "id = ?", result.TourID).Error)
	assert.Equal(t, "backwater-cruise-deluxe", saved.Slug)
}

func TestManualSlugStopsDerivation(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	assert.NoError(t, s.SetField("title", "Backwater Cruise"))
	assert.NoError(t, s.SetField("slug", "kerala-backwaters"))

	assert.NoError(t, s.SetField("title", "Backwater Cruise Deluxe"))
	assert.Equal(t, "kerala-backwaters", s.State().Slug)
}

func TestSetFieldRejectsUnknownAndWrongKind(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	assert.Error(t, s.SetField("bogus", "x"))
	assert.Error(t, s.SetField("title", 42))
	assert.Error(t, s.SetField("is_featured", "yes"))
	assert.False(t, s.Dirty())
}

func itineraryDays(s *Session) []int {
	state := s.State()
	days := make([]int, len(state.Itinerary))
	for i, d := range state.Itinerary {
		days[i] = d.Day
	}
	return days
}

func TestItineraryRemoveRenumbers(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddItineraryDay()
	s.AddItineraryDay()
	s.AddItineraryDay()
	assert.NoError(t, s.UpdateItineraryDay(0, "Arrive", ""))
	assert.NoError(t, s.UpdateItineraryDay(1, "Explore", ""))
	assert.NoError(t, s.UpdateItineraryDay(2, "Depart", ""))

	assert.NoError(t, s.RemoveItineraryDay(1))

	state := s.State()
	assert.Len(t, state.Itinerary, 2)
	assert.Equal(t, []int{1, 2}, itineraryDays(s))
	assert.Equal(t, "Arrive", state.Itinerary[0].Title)
	assert.Equal(t, "Depart", state.Itinerary[1].Title)
}

func TestItineraryMoveRenumbers(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddItineraryDay()
	s.AddItineraryDay()
	assert.NoError(t, s.UpdateItineraryDay(0, "First", ""))
	assert.NoError(t, s.UpdateItineraryDay(1, "Second", ""))

	assert.NoError(t, s.MoveItineraryDay(0, 1))

	state := s.State()
	assert.Equal(t, "Second", state.Itinerary[0].Title)
	assert.Equal(t, "First", state.Itinerary[1].Title)
	assert.Equal(t, []int{1, 2}, itineraryDays(s))
}

func TestItineraryMoveOffEndIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddItineraryDay()
	before := s.State()

	assert.NoError(t, s.MoveItineraryDay(0, -1))
	assert.NoError(t, s.MoveItineraryDay(0, 1))
	assert.Equal(t, before.Itinerary, s.State().Itinerary)
}

func TestItineraryIndexOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	assert.Error(t, s.UpdateItineraryDay(0, "x", ""))
	assert.Error(t, s.RemoveItineraryDay(-1))
	assert.Error(t, s.MoveItineraryDay(3, 1))
}

func TestSetItineraryRenumbersWholesale(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.SetItinerary([]models.ItineraryDay{
		{Day: 7, Title: "A"},
		{Day: 7, Title: "B"},
		{Day: 0, Title: "C"},
	})

	assert.Equal(t, []int{1, 2, 3}, itineraryDays(s))
}

func TestGalleryAddDefaultsSectionAndOrder(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddGalleryImage(models.GalleryImage{URL: "a.jpg"})
	s.AddGalleryImage(models.GalleryImage{URL: "b.jpg", Section: models.ImageSectionItinerary})

	state := s.State()
	assert.Equal(t, 1, state.Gallery[0].Order)
	assert.Equal(t, models.ImageSectionGallery, state.Gallery[0].Section)
	assert.Equal(t, 2, state.Gallery[1].Order)
	assert.Equal(t, models.ImageSectionItinerary, state.Gallery[1].Section)
}

func TestGalleryRemoveRenumbers(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddGalleryImage(models.GalleryImage{URL: "a.jpg"})
	s.AddGalleryImage(models.GalleryImage{URL: "b.jpg"})
	s.AddGalleryImage(models.GalleryImage{URL: "c.jpg"})

	assert.NoError(t, s.RemoveGalleryImage(0))

	state := s.State()
	assert.Len(t, state.Gallery, 2)
	assert.Equal(t, "b.jpg", state.Gallery[0].URL)
	assert.Equal(t, 1, state.Gallery[0].Order)
	assert.Equal(t, "c.jpg", state.Gallery[1].URL)
	assert.Equal(t, 2, state.Gallery[1].Order)
}

func TestGalleryMoveRenumbers(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddGalleryImage(models.GalleryImage{URL: "a.jpg"})
	s.AddGalleryImage(models.GalleryImage{URL: "b.jpg"})

	assert.NoError(t, s.MoveGalleryImage(1, -1))

	state := s.State()
	assert.Equal(t, "b.jpg", state.Gallery[0].URL)
	assert.Equal(t, 1, state.Gallery[0].Order)
	assert.Equal(t, "a.jpg", state.Gallery[1].URL)
	assert.Equal(t, 2, state.Gallery[1].Order)
}

func TestCloseReportsDiscardedChanges(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	s, _ := m.Open("")
	assert.NoError(t, s.SetField("title", "Unsaved"))

	dirty, err := m.Close(s.ID)
	assert.NoError(t, err)
	assert.True(t, dirty)

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCloseCleanSession(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	s, _ := m.Open("")
	dirty, err := m.Close(s.ID)
	assert.NoError(t, err)
	assert.False(t, dirty)

	_, err = m.Close(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestIdleSessionsAreSwept(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)

	idle, _ := m.Open("")
	busy, _ := m.Open("")
	assert.NoError(t, busy.SetField("title", "Still Editing"))

	idle.mu.Lock()
	idle.lastUsedAt = time.Now().Add(-DefaultSessionIdleTTL - time.Minute)
	idle.mu.Unlock()

	m.closeIdleSessions(time.Now())

	_, err := m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.True(t, idle.autosaver.stopped)

	_, err = m.Get(busy.ID)
	assert.NoError(t, err)
}

func TestStateReturnsCopy(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	s.AddItineraryDay()
	state := s.State()
	state.Itinerary[0].Title = "mutated"

	assert.Empty(t, s.State().Itinerary[0].Title)
}
