package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	deep "github.com/brunoga/deep/v3"
)

// ErrSaveInFlight is returned when a manual save is requested while another
// persistence operation (autosave or save) is still outstanding.
var ErrSaveInFlight = errors.New("a save is already in flight")

// ValidationError carries per-field messages from the local pre-network
// checks. All failing fields are collected before aborting.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// SlugError means the pre-save uniqueness re-check rejected the slug, either
// a real conflict or a failed check treated as one.
type SlugError struct {
	Check SlugCheck
}

func (e *SlugError) Error() string {
	return e.Check.Message
}

// SaveResult reports a completed full save.
type SaveResult struct {
	TourID  string    `json:"tour_id"`
	SavedAt time.Time `json:"saved_at"`
}

// Save commits the complete form state: local validation, synchronous slug
// re-check, upsert of the full record as published, then best-effort fan-out
// to the gallery and content-section rows. Fan-out failures never roll back
// the primary write.
func (s *Session) Save() (SaveResult, error) {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return SaveResult{}, ErrSaveInFlight
	}
	s.saving = true
	s.touchLocked()
	tourID := s.tourID
	snapshot := deep.MustCopy(s.form)
	s.mu.Unlock()

	result, err := s.saveSnapshot(tourID, snapshot)

	s.mu.Lock()
	s.saving = false
	if err == nil {
		s.tourID = result.TourID
		s.baseline = snapshot
		s.lastSavedAt = result.SavedAt
	}
	s.mu.Unlock()

	return result, err
}

func (s *Session) saveSnapshot(tourID string, snapshot FormState) (SaveResult, error) {
	// Step 1: local validation, no network call on failure.
	if fields := validateForm(snapshot); len(fields) > 0 {
		return SaveResult{}, &ValidationError{Fields: fields}
	}

	// Step 2: the slug may have changed or gone stale since blur, so the
	// uniqueness check always runs again here.
	check := checkSlug(s.tours, strings.TrimSpace(snapshot.Slug), tourID)
	if check.Status != SlugAvailable {
		return SaveResult{}, &SlugError{Check: check}
	}

	// Step 3: upsert the full record. This workflow only ever publishes.
	record, err := snapshot.toTourRecord(tourID, true)
	if err != nil {
		return SaveResult{}, &ValidationError{Fields: map[string]string{"form": err.Error()}}
	}

	if tourID == "" {
		id, err := s.tours.Insert(&record)
		if err != nil {
			return SaveResult{}, fmt.Errorf("create tour: %w", err)
		}
		tourID = id
	} else {
		if err := s.tours.Update(&record); err != nil {
			return SaveResult{}, fmt.Errorf("update tour: %w", err)
		}
	}

	// Step 4: best-effort fan-out. Each write swallows its own error; a
	// failure here leaves a consistency window recoverable by re-saving.
	gallery := renumberGallery(snapshot.Gallery)
	if err := s.content.ReplaceGalleryImages(tourID, gallery); err != nil {
		log.Printf("fan-out: replace gallery images for tour %s: %v", tourID, err)
	}
	if err := s.content.UpsertOverviewImage(tourID, snapshot.FeaturedImageURL); err != nil {
		log.Printf("fan-out: upsert overview image for tour %s: %v", tourID, err)
	}
	if err := s.content.ReplaceSections(tourID, snapshot.Overview, renumberItinerary(snapshot.Itinerary)); err != nil {
		log.Printf("fan-out: replace sections for tour %s: %v", tourID, err)
	}

	return SaveResult{TourID: tourID, SavedAt: time.Now()}, nil
}

// validateForm runs the local pre-save checks and collects every failing
// field: title and slug must be non-empty, rating (if given) numeric within
// [0.0, 5.0].
func validateForm(f FormState) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Slug) == "" {
		fields["slug"] = "Slug is required"
	}

	rating, err := parseOptionalFloat(f.Rating)
	if err != nil {
		fields["rating"] = "Rating must be a number"
	} else if rating != nil && (*rating < 0.0 || *rating > 5.0) {
		fields["rating"] = "Rating must be between 0.0 and 5.0"
	}

	if _, err := parseOptionalFloat(f.Price); err != nil {
		fields["price"] = "Price must be a number"
	}
	if _, err := parseOptionalInt(f.DurationDays); err != nil {
		fields["duration_days"] = "Duration must be a whole number"
	}
	if _, err := parseOptionalInt(f.DisplayOrder); err != nil {
		fields["display_order"] = "Display order must be a whole number"
	}

	return fields
}
