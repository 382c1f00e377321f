package editor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tour-admin-backend/models"

	"gorm.io/datatypes"
)

// FormState is the single source of truth for the tour under edit. Numeric
// inputs stay as text the way the form carries them; parsing happens at
// validation time. Nested collections are replaced wholesale and renumbered
// by the session mutation helpers.
type FormState struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	CategoryID       string `json:"category_id"`
	ShortDescription string `json:"short_description"`
	Overview         string `json:"overview"`
	FeaturedImageURL string `json:"featured_image_url"`

	Price        string `json:"price"`
	DurationDays string `json:"duration_days"`
	DisplayOrder string `json:"display_order"`
	Rating       string `json:"rating"`
	Location     string `json:"location"`

	IsFeatured      bool `json:"is_featured"`
	IsDayOutPackage bool `json:"is_day_out_package"`
	IsPublished     bool `json:"is_published"`

	Itinerary []models.ItineraryDay `json:"itinerary"`
	Gallery   []models.GalleryImage `json:"image_gallery_urls"`
}

// NewFormState returns the blank state for a brand-new tour.
func NewFormState() FormState {
	return FormState{
		DisplayOrder: strconv.Itoa(models.DefaultDisplayOrder),
		Itinerary:    []models.ItineraryDay{},
		Gallery:      []models.GalleryImage{},
	}
}

// FormStateFromTour normalizes a fetched record into form state: absent
// optionals become empty string/array/false, never nil.
func FormStateFromTour(tour models.Tour) FormState {
	state := NewFormState()

	state.Title = tour.Title
	state.Slug = tour.Slug
	if tour.CategoryID != nil {
		state.CategoryID = *tour.CategoryID
	}
	state.ShortDescription = tour.ShortDescription
	state.Overview = tour.Overview
	state.FeaturedImageURL = tour.FeaturedImageURL
	state.Location = tour.Location

	if tour.Price != nil {
		state.Price = strconv.FormatFloat(*tour.Price, 'f', -1, 64)
	}
	if tour.DurationDays != nil {
		state.DurationDays = strconv.Itoa(*tour.DurationDays)
	}
	state.DisplayOrder = strconv.Itoa(tour.DisplayOrder)
	if tour.Rating != nil {
		state.Rating = strconv.FormatFloat(*tour.Rating, 'f', -1, 64)
	}

	state.IsFeatured = tour.IsFeatured
	state.IsDayOutPackage = tour.IsDayOutPackage
	state.IsPublished = tour.IsPublished

	if len(tour.Itinerary) > 0 {
		var days []models.ItineraryDay
		if err := json.Unmarshal(tour.Itinerary, &days); err == nil && days != nil {
			state.Itinerary = days
		}
	}
	if len(tour.ImageGalleryURLs) > 0 {
		var images []models.GalleryImage
		if err := json.Unmarshal(tour.ImageGalleryURLs, &images); err == nil && images != nil {
			state.Gallery = images
		}
	}

	return state
}

// SetField replaces one scalar field by its JSON name. Unknown fields and
// wrong value kinds are rejected; collections go through the dedicated
// mutation helpers instead.
func (f *FormState) SetField(name string, value interface{}) error {
	asString := func() (string, bool) {
		s, ok := value.(string)
		return s, ok
	}
	asBool := func() (bool, bool) {
		b, ok := value.(bool)
		return b, ok
	}

	switch name {
	case "title":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Title = s
	case "slug":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Slug = s
	case "category_id":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.CategoryID = s
	case "short_description":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.ShortDescription = s
	case "overview":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Overview = s
	case "featured_image_url":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.FeaturedImageURL = s
	case "price":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Price = s
	case "duration_days":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.DurationDays = s
	case "display_order":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.DisplayOrder = s
	case "rating":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Rating = s
	case "location":
		s, ok := asString()
		if !ok {
			return fmt.Errorf("field %s expects a string", name)
		}
		f.Location = s
	case "is_featured":
		b, ok := asBool()
		if !ok {
			return fmt.Errorf("field %s expects a bool", name)
		}
		f.IsFeatured = b
	case "is_day_out_package":
		b, ok := asBool()
		if !ok {
			return fmt.Errorf("field %s expects a bool", name)
		}
		f.IsDayOutPackage = b
	case "is_published":
		b, ok := asBool()
		if !ok {
			return fmt.Errorf("field %s expects a bool", name)
		}
		f.IsPublished = b
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// renumberItinerary enforces day == index+1 across the list.
func renumberItinerary(days []models.ItineraryDay) []models.ItineraryDay {
	out := make([]models.ItineraryDay, len(days))
	for i, d := range days {
		d.Day = i + 1
		out[i] = d
	}
	return out
}

// renumberGallery enforces order == index+1 across the list.
func renumberGallery(images []models.GalleryImage) []models.GalleryImage {
	out := make([]models.GalleryImage, len(images))
	for i, img := range images {
		img.Order = i + 1
		out[i] = img
	}
	return out
}

// parseOptionalFloat is shared by validation and record building. An empty
// string means "absent".
func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// toTourRecord builds the persistable record from the form snapshot. publish
// forces is_published/status; the full-save path always publishes.
func (f FormState) toTourRecord(tourID string, publish bool) (models.Tour, error) {
	tour := models.Tour{
		ID:               tourID,
		Title:            strings.TrimSpace(f.Title),
		Slug:             strings.TrimSpace(f.Slug),
		ShortDescription: f.ShortDescription,
		Overview:         f.Overview,
		FeaturedImageURL: f.FeaturedImageURL,
		Location:         f.Location,
		IsFeatured:       f.IsFeatured,
		IsDayOutPackage:  f.IsDayOutPackage,
		IsPublished:      f.IsPublished,
		Status:           models.TourStatusDraft,
	}

	if c := strings.TrimSpace(f.CategoryID); c != "" {
		tour.CategoryID = &c
	}

	price, err := parseOptionalFloat(f.Price)
	if err != nil {
		return tour, fmt.Errorf("price: %w", err)
	}
	tour.Price = price

	duration, err := parseOptionalInt(f.DurationDays)
	if err != nil {
		return tour, fmt.Errorf("duration_days: %w", err)
	}
	tour.DurationDays = duration

	rating, err := parseOptionalFloat(f.Rating)
	if err != nil {
		return tour, fmt.Errorf("rating: %w", err)
	}
	tour.Rating = rating

	order, err := parseOptionalInt(f.DisplayOrder)
	if err != nil {
		return tour, fmt.Errorf("display_order: %w", err)
	}
	if order != nil {
		tour.DisplayOrder = *order
	} else {
		tour.DisplayOrder = models.DefaultDisplayOrder
	}

	itinerary, err := json.Marshal(renumberItinerary(f.Itinerary))
	if err != nil {
		return tour, err
	}
	tour.Itinerary = datatypes.JSON(itinerary)

	gallery, err := json.Marshal(renumberGallery(f.Gallery))
	if err != nil {
		return tour, err
	}
	tour.ImageGalleryURLs = datatypes.JSON(gallery)

	if publish {
		tour.IsPublished = true
		tour.Status = models.TourStatusPublished
	} else if f.IsPublished {
		tour.Status = models.TourStatusPublished
	}

	return tour, nil
}
