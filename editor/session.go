package editor

import (
	"errors"
	"sync"
	"time"

	"tour-admin-backend/models"
	"tour-admin-backend/utils"

	deep "github.com/brunoga/deep/v3"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TourStore is the slice of the persistence gateway the editor needs for the
// tour record itself.
type TourStore interface {
	GetByID(id string) (models.Tour, error)
	Insert(tour *models.Tour) (string, error)
	Update(tour *models.Tour) error
	UpdateFields(id string, fields map[string]interface{}) error
	CheckSlugAvailable(slug, excludingTourID string) (bool, error)
}

// ContentStore covers the dependent rows the full save fans out to.
type ContentStore interface {
	ReplaceGalleryImages(tourID string, images []models.GalleryImage) error
	UpsertOverviewImage(tourID, featuredImageURL string) error
	ReplaceSections(tourID, overviewHTML string, itinerary []models.ItineraryDay) error
}

// DraftMaterializer guarantees a tour id exists before an upload needs a
// tour-scoped storage path. Injected into the upload path; callers never
// reach into persistence directly.
type DraftMaterializer interface {
	EnsureTourID() (string, error)
}

var ErrSessionNotFound = errors.New("edit session not found")

// Sessions untouched for this long are closed by the manager's sweep so an
// abandoned browser tab doesn't keep an autosave goroutine alive forever.
const DefaultSessionIdleTTL = 2 * time.Hour

const sessionSweepInterval = time.Minute

// Session owns one in-progress tour edit: the form state, the baseline
// snapshot for dirty tracking, and the single in-flight-save flag shared by
// autosave and manual save. All three collaborators read the same owned
// FormState instance.
type Session struct {
	ID     string
	tourID string

	tours   TourStore
	content ContentStore

	mu       sync.Mutex
	form     FormState
	baseline FormState
	loading  bool
	saving   bool

	draftTried bool

	lastUsedAt     time.Time
	lastAutosaveAt time.Time
	lastSavedAt    time.Time

	autosaver *Autosaver
}

// Manager hands out and tracks edit sessions, one per open editor.
type Manager struct {
	tours   TourStore
	content ContentStore

	mu       sync.Mutex
	sessions map[string]*Session

	autosaveInterval time.Duration
	idleTTL          time.Duration
}

func NewManager(tours TourStore, content ContentStore, autosaveInterval time.Duration) *Manager {
	if autosaveInterval <= 0 {
		autosaveInterval = DefaultAutosaveInterval
	}
	m := &Manager{
		tours:            tours,
		content:          content,
		sessions:         make(map[string]*Session),
		autosaveInterval: autosaveInterval,
		idleTTL:          DefaultSessionIdleTTL,
	}
	go m.sweepLoop()
	return m
}

func (m *Manager) sweepLoop() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		m.closeIdleSessions(time.Now())
	}
}

// closeIdleSessions drops every session whose last activity is older than the
// idle TTL and stops its autosaver. Unsaved changes in those sessions are
// discarded, the same as an explicit close.
func (m *Manager) closeIdleSessions(now time.Time) {
	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if now.Sub(s.lastUsed()) > m.idleTTL {
			delete(m.sessions, id)
			expired = append(expired, s)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.autosaver.Stop()
	}
}

// Open starts an edit session. With a tour id it loads the existing record;
// without one it opens a blank form for a new tour.
func (m *Manager) Open(tourID string) (*Session, error) {
	s := &Session{
		ID:      uuid.NewString(),
		tours:   m.tours,
		content: m.content,
		loading: true,
	}

	if tourID != "" {
		tour, err := m.tours.GetByID(tourID)
		if err != nil {
			return nil, err
		}
		s.tourID = tour.ID
		s.form = FormStateFromTour(tour)
	} else {
		s.form = NewFormState()
	}

	s.baseline = deep.MustCopy(s.form)
	s.loading = false
	s.lastUsedAt = time.Now()

	s.autosaver = newAutosaver(s, m.autosaveInterval)
	s.autosaver.Start()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close stops the session's autosave loop and drops it. The returned flag is
// the unload guard: true means unsaved changes were discarded and the caller
// should have prompted first.
func (m *Manager) Close(sessionID string) (bool, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return false, ErrSessionNotFound
	}

	s.autosaver.Stop()
	return s.Dirty(), nil
}

// TourID returns the persisted id, empty while the tour is still unsaved.
func (s *Session) TourID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tourID
}

// State returns a copy of the current form state.
func (s *Session) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return deep.MustCopy(s.form)
}

func (s *Session) touchLocked() {
	s.lastUsedAt = time.Now()
}

func (s *Session) lastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsedAt
}

// Dirty reports whether the form differs structurally from the last loaded
// or saved baseline. A session still loading is never dirty.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirtyLocked()
}

func (s *Session) dirtyLocked() bool {
	if s.loading {
		return false
	}
	return !deep.Equal(s.form, s.baseline)
}

// LastAutosaveAt is the time of the last successful background save.
func (s *Session) LastAutosaveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAutosaveAt
}

// SetField replaces one scalar field. Setting the title also carries the slug
// along while the slug is still the derived form of the title; once the user
// has typed a slug of their own it stays put.
func (s *Session) SetField(name string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if name == "title" {
		previousTitle := s.form.Title
		if err := s.form.SetField(name, value); err != nil {
			return err
		}
		if s.form.Slug == "" || s.form.Slug == utils.GenerateSlug(previousTitle) {
			s.form.Slug = utils.GenerateSlug(s.form.Title)
		}
		return nil
	}
	return s.form.SetField(name, value)
}

// SetItinerary replaces the whole itinerary; days are renumbered here so the
// contiguity invariant holds no matter what the caller sends.
func (s *Session) SetItinerary(days []models.ItineraryDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.form.Itinerary = renumberItinerary(days)
}

// SetGallery replaces the whole gallery with recomputed order values.
func (s *Session) SetGallery(images []models.GalleryImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.form.Gallery = renumberGallery(images)
}

// AddItineraryDay appends a blank day numbered after the current last.
func (s *Session) AddItineraryDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.form.Itinerary = append(s.form.Itinerary, models.ItineraryDay{Day: len(s.form.Itinerary) + 1})
}

func (s *Session) UpdateItineraryDay(index int, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if index < 0 || index >= len(s.form.Itinerary) {
		return errors.New("itinerary index out of range")
	}
	s.form.Itinerary[index].Title = title
	s.form.Itinerary[index].Description = description
	return nil
}

func (s *Session) RemoveItineraryDay(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if index < 0 || index >= len(s.form.Itinerary) {
		return errors.New("itinerary index out of range")
	}
	days := append([]models.ItineraryDay{}, s.form.Itinerary[:index]...)
	days = append(days, s.form.Itinerary[index+1:]...)
	s.form.Itinerary = renumberItinerary(days)
	return nil
}

// MoveItineraryDay swaps a day with its neighbor; direction is -1 for up,
// +1 for down. Moves off either end are no-ops, matching the form buttons.
func (s *Session) MoveItineraryDay(index, direction int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if index < 0 || index >= len(s.form.Itinerary) {
		return errors.New("itinerary index out of range")
	}
	target := index + direction
	if target < 0 || target >= len(s.form.Itinerary) {
		return nil
	}
	days := append([]models.ItineraryDay{}, s.form.Itinerary...)
	days[index], days[target] = days[target], days[index]
	s.form.Itinerary = renumberItinerary(days)
	return nil
}

// AddGalleryImage appends an image ordered after the current last.
func (s *Session) AddGalleryImage(img models.GalleryImage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	img.Order = len(s.form.Gallery) + 1
	if img.Section == "" {
		img.Section = models.ImageSectionGallery
	}
	s.form.Gallery = append(s.form.Gallery, img)
}

func (s *Session) RemoveGalleryImage(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if index < 0 || index >= len(s.form.Gallery) {
		return errors.New("gallery index out of range")
	}
	images := append([]models.GalleryImage{}, s.form.Gallery[:index]...)
	images = append(images, s.form.Gallery[index+1:]...)
	s.form.Gallery = renumberGallery(images)
	return nil
}

func (s *Session) MoveGalleryImage(index, direction int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if index < 0 || index >= len(s.form.Gallery) {
		return errors.New("gallery index out of range")
	}
	target := index + direction
	if target < 0 || target >= len(s.form.Gallery) {
		return nil
	}
	images := append([]models.GalleryImage{}, s.form.Gallery...)
	images[index], images[target] = images[target], images[index]
	s.form.Gallery = renumberGallery(images)
	return nil
}

// IsTourMissing tells controllers apart a bad id from a server fault.
func IsTourMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
