package editor

import "strings"

type SlugStatus string

const (
	SlugUnknown     SlugStatus = "unknown"
	SlugAvailable   SlugStatus = "available"
	SlugUnavailable SlugStatus = "unavailable"
)

const (
	msgSlugRequired    = "Slug is required"
	msgSlugAvailable   = "Slug is available"
	msgSlugTaken       = "Slug is already in use"
	msgSlugCheckFailed = "Unable to validate slug"
)

// SlugCheck is the outcome of one uniqueness check.
type SlugCheck struct {
	Status  SlugStatus `json:"status"`
	Message string     `json:"message"`
}

// ValidateSlug checks the current form slug against all other tours,
// excluding this session's own tour id when editing. A failed remote check is
// reported as unavailable: an unverified slug never passes.
func (s *Session) ValidateSlug() SlugCheck {
	s.mu.Lock()
	s.touchLocked()
	slug := strings.TrimSpace(s.form.Slug)
	tourID := s.tourID
	s.mu.Unlock()

	return checkSlug(s.tours, slug, tourID)
}

func checkSlug(store TourStore, slug, excludingTourID string) SlugCheck {
	if slug == "" {
		return SlugCheck{Status: SlugUnknown, Message: msgSlugRequired}
	}

	available, err := store.CheckSlugAvailable(slug, excludingTourID)
	if err != nil {
		return SlugCheck{Status: SlugUnavailable, Message: msgSlugCheckFailed}
	}
	if !available {
		return SlugCheck{Status: SlugUnavailable, Message: msgSlugTaken}
	}
	return SlugCheck{Status: SlugAvailable, Message: msgSlugAvailable}
}
