package editor

import (
	"log"
	"os"
	"strconv"
	"time"

	deep "github.com/brunoga/deep/v3"
)

// DefaultAutosaveInterval is a fixed 30 second tick, not a trailing-edge
// debounce.
const DefaultAutosaveInterval = 30 * time.Second

// AutosaveIntervalFromEnv reads AUTOSAVE_INTERVAL_SECONDS, falling back to
// the default on absence or garbage.
func AutosaveIntervalFromEnv() time.Duration {
	raw := os.Getenv("AUTOSAVE_INTERVAL_SECONDS")
	if raw == "" {
		return DefaultAutosaveInterval
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return DefaultAutosaveInterval
	}
	return time.Duration(secs) * time.Second
}

// Autosaver periodically persists a reduced field subset while the session is
// dirty and no other save is in flight. It has an explicit start/stop
// lifecycle tied to the session's open/close.
type Autosaver struct {
	session  *Session
	interval time.Duration
	done     chan struct{}
	stopped  bool
}

func newAutosaver(s *Session, interval time.Duration) *Autosaver {
	return &Autosaver{
		session:  s,
		interval: interval,
		done:     make(chan struct{}),
	}
}

func (a *Autosaver) Start() {
	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.session.AutosaveTick()
			case <-a.done:
				return
			}
		}
	}()
}

func (a *Autosaver) Stop() {
	if a.stopped {
		return
	}
	a.stopped = true
	close(a.done)
}

// AutosaveTick runs one scheduler step: skip unless dirty, loaded, id-bearing
// and idle; otherwise persist the autosave subset and move the baseline
// forward. Failures are logged only; the dirty flag stays set so the next
// tick retries.
func (s *Session) AutosaveTick() {
	s.mu.Lock()
	if s.loading || s.saving || !s.dirtyLocked() {
		s.mu.Unlock()
		return
	}
	if s.tourID == "" {
		// Nothing persisted yet; autosave has no record to update. The
		// first manual save or draft materialization creates one.
		s.mu.Unlock()
		return
	}
	s.saving = true
	tourID := s.tourID
	snapshot := deep.MustCopy(s.form)
	s.mu.Unlock()

	err := s.tours.UpdateFields(tourID, autosaveFields(snapshot))

	s.mu.Lock()
	s.saving = false
	if err != nil {
		s.mu.Unlock()
		log.Printf("autosave failed for tour %s: %v", tourID, err)
		return
	}
	s.baseline = snapshot
	s.lastAutosaveAt = time.Now()
	s.mu.Unlock()
}

// autosaveFields is the reduced subset autosave persists. Itinerary days and
// gallery rows are deliberately absent; only the full save touches those.
func autosaveFields(f FormState) map[string]interface{} {
	fields := map[string]interface{}{
		"title":              f.Title,
		"slug":               f.Slug,
		"short_description":  f.ShortDescription,
		"overview":           f.Overview,
		"featured_image_url": f.FeaturedImageURL,
		"is_featured":        f.IsFeatured,
		"is_day_out_package": f.IsDayOutPackage,
		"location":           f.Location,
	}

	if c := f.CategoryID; c != "" {
		fields["category_id"] = c
	} else {
		fields["category_id"] = nil
	}

	if order, err := parseOptionalInt(f.DisplayOrder); err == nil && order != nil {
		fields["display_order"] = *order
	}
	if rating, err := parseOptionalFloat(f.Rating); err == nil {
		if rating != nil {
			fields["rating"] = *rating
		} else {
			fields["rating"] = nil
		}
	}

	return fields
}
