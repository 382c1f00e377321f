package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tour-admin-backend/services"
)

// failingSlugStore wraps the real gateway but makes the uniqueness check
// unreachable, simulating a backend fault at blur time.
type failingSlugStore struct {
	TourStore
}

func (f *failingSlugStore) CheckSlugAvailable(slug, excludingTourID string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestValidateSlugEmpty(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	check := s.ValidateSlug()
	assert.Equal(t, SlugUnknown, check.Status)
	assert.Equal(t, "Slug is required", check.Message)
}

func TestValidateSlugAvailable(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	s, _ := m.Open("")

	assert.NoError(t, s.SetField("slug", "munnar-hills"))

	check := s.ValidateSlug()
	assert.Equal(t, SlugAvailable, check.Status)
	assert.Equal(t, "Slug is available", check.Message)
}

func TestValidateSlugTaken(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	createTestTour(t, db, "Existing", "munnar-hills")

	s, _ := m.Open("")
	assert.NoError(t, s.SetField("slug", "munnar-hills"))

	check := s.ValidateSlug()
	assert.Equal(t, SlugUnavailable, check.Status)
	assert.Equal(t, "Slug is already in use", check.Message)
}

// A tour keeps passing validation against its own stored slug.
func TestValidateSlugExcludesOwnTour(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	tour := createTestTour(t, db, "Taj Tour", "taj-tour")

	s, err := m.Open(tour.ID)
	assert.NoError(t, err)

	check := s.ValidateSlug()
	assert.Equal(t, SlugAvailable, check.Status)
}

func TestValidateSlugTrimsWhitespace(t *testing.T) {
	db := setupTestDB(t)
	m := newTestManager(db)
	createTestTour(t, db, "Existing", "kochi-walk")

	s, _ := m.Open("")
	assert.NoError(t, s.SetField("slug", "  kochi-walk  "))

	check := s.ValidateSlug()
	assert.Equal(t, SlugUnavailable, check.Status)
}

// A check that cannot reach the backend reports unavailable, never available.
func TestValidateSlugFailsClosed(t *testing.T) {
	db := setupTestDB(t)
	tours := services.NewTourService(db)
	content := services.NewTourContentService(db)
	m := NewManager(&failingSlugStore{TourStore: tours}, content, time.Hour)

	s, _ := m.Open("")
	assert.NoError(t, s.SetField("slug", "anything"))

	check := s.ValidateSlug()
	assert.Equal(t, SlugUnavailable, check.Status)
	assert.Equal(t, "Unable to validate slug", check.Message)
}
