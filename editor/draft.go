package editor

import (
	"log"
	"strings"

	"tour-admin-backend/models"
	"tour-admin-backend/utils"
)

// EnsureTourID implements DraftMaterializer: it guarantees a persisted tour
// id exists before an upload needs a tour-scoped storage path. An existing id
// is returned as-is with no side effect. Otherwise a minimal placeholder
// record is created at most once per session; when creation fails the caller
// gets an empty id and falls back to a root storage path instead of blocking
// the upload.
func (s *Session) EnsureTourID() (string, error) {
	s.mu.Lock()
	s.touchLocked()

	if s.tourID != "" {
		id := s.tourID
		s.mu.Unlock()
		return id, nil
	}
	if s.draftTried {
		s.mu.Unlock()
		return "", nil
	}
	s.draftTried = true
	title := strings.TrimSpace(s.form.Title)
	s.mu.Unlock()

	placeholderTitle := title
	if placeholderTitle == "" {
		placeholderTitle = "Untitled Tour"
	}

	draft := models.Tour{
		Title:        placeholderTitle,
		Slug:         utils.PlaceholderSlug(title),
		DisplayOrder: models.DefaultDisplayOrder,
		IsPublished:  true,
		Status:       models.TourStatusPublished,
	}

	id, err := s.tours.Insert(&draft)
	if err != nil {
		log.Printf("draft materialization failed: %v", err)
		return "", err
	}

	// The session is now editing an id-bearing draft; later saves update
	// this record instead of inserting a new one.
	s.mu.Lock()
	s.tourID = id
	s.mu.Unlock()

	return id, nil
}
