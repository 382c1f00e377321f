package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tour-admin-backend/editor"
	"tour-admin-backend/models"
	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
)

// EditorController exposes the tour edit session workflow: open/close, field
// and collection mutations, slug validation, draft materialization, uploads
// and the full save.
type EditorController struct {
	manager *editor.Manager
	storage *services.StorageService
}

func NewEditorController(manager *editor.Manager, storage *services.StorageService) *EditorController {
	return &EditorController{manager: manager, storage: storage}
}

func (ec *EditorController) session(c *gin.Context) *editor.Session {
	s, err := ec.manager.Get(c.Param("sid"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "edit session not found")
		return nil
	}
	return s
}

func sessionView(s *editor.Session) gin.H {
	return gin.H{
		"session_id": s.ID,
		"tour_id":    s.TourID(),
		"dirty":      s.Dirty(),
		"form":       s.State(),
	}
}

// ----------------------------------------------------
// 1. Open / inspect / close sessions
// ----------------------------------------------------

type openSessionPayload struct {
	TourID string `json:"tour_id"`
}

func (ec *EditorController) Open(c *gin.Context) {
	var payload openSessionPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid payload")
			return
		}
	}

	s, err := ec.manager.Open(payload.TourID)
	if err != nil {
		if editor.IsTourMissing(err) {
			utils.JSONError(c, http.StatusNotFound, "tour not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tour")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, sessionView(s))
}

func (ec *EditorController) State(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}
	view := sessionView(s)
	if t := s.LastAutosaveAt(); !t.IsZero() {
		view["last_autosave_at"] = t
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// Close is the page-unload analogue: it stops the autosave loop and reports
// whether unsaved changes were discarded so the client can warn.
func (ec *EditorController) Close(c *gin.Context) {
	dirty, err := ec.manager.Close(c.Param("sid"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "edit session not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"discarded_changes": dirty})
}

// ----------------------------------------------------
// 2. Field mutation
// ----------------------------------------------------

type setFieldPayload struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

func (ec *EditorController) SetField(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	var payload setFieldPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := s.SetField(payload.Name, payload.Value); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"dirty": s.Dirty()})
}

// ----------------------------------------------------
// 3. Itinerary operations
// ----------------------------------------------------

func (ec *EditorController) ReplaceItinerary(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	var days []models.ItineraryDay
	if err := c.ShouldBindJSON(&days); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	s.SetItinerary(days)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"itinerary": s.State().Itinerary, "dirty": s.Dirty()})
}

func (ec *EditorController) AddItineraryDay(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}
	s.AddItineraryDay()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"itinerary": s.State().Itinerary, "dirty": s.Dirty()})
}

type itineraryDayPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (ec *EditorController) UpdateItineraryDay(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	var payload itineraryDayPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := s.UpdateItineraryDay(index, payload.Title, payload.Description); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"itinerary": s.State().Itinerary, "dirty": s.Dirty()})
}

func (ec *EditorController) RemoveItineraryDay(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	if err := s.RemoveItineraryDay(index); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"itinerary": s.State().Itinerary, "dirty": s.Dirty()})
}

type movePayload struct {
	Direction int `json:"direction"` // -1 up, +1 down
}

func (ec *EditorController) MoveItineraryDay(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	var payload movePayload
	if err := c.ShouldBindJSON(&payload); err != nil || (payload.Direction != -1 && payload.Direction != 1) {
		utils.JSONError(c, http.StatusBadRequest, "direction must be -1 or 1")
		return
	}

	if err := s.MoveItineraryDay(index, payload.Direction); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"itinerary": s.State().Itinerary, "dirty": s.Dirty()})
}

// ----------------------------------------------------
// 4. Gallery operations
// ----------------------------------------------------

func (ec *EditorController) ReplaceGallery(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	var images []models.GalleryImage
	if err := c.ShouldBindJSON(&images); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	s.SetGallery(images)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"gallery": s.State().Gallery, "dirty": s.Dirty()})
}

func (ec *EditorController) AddGalleryImage(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	var img models.GalleryImage
	if err := c.ShouldBindJSON(&img); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if img.URL == "" {
		utils.JSONError(c, http.StatusBadRequest, "url is required")
		return
	}

	s.AddGalleryImage(img)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"gallery": s.State().Gallery, "dirty": s.Dirty()})
}

func (ec *EditorController) RemoveGalleryImage(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	if err := s.RemoveGalleryImage(index); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"gallery": s.State().Gallery, "dirty": s.Dirty()})
}

func (ec *EditorController) MoveGalleryImage(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	var payload movePayload
	if err := c.ShouldBindJSON(&payload); err != nil || (payload.Direction != -1 && payload.Direction != 1) {
		utils.JSONError(c, http.StatusBadRequest, "direction must be -1 or 1")
		return
	}

	if err := s.MoveGalleryImage(index, payload.Direction); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"gallery": s.State().Gallery, "dirty": s.Dirty()})
}

// ----------------------------------------------------
// 5. Draft, slug, upload, save
// ----------------------------------------------------

// EnsureDraft materializes a minimal persisted record so uploads have a
// parent id. Failure is not fatal: the client keeps working with a root
// storage path.
func (ec *EditorController) EnsureDraft(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	id, err := s.EnsureTourID()
	if err != nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"tour_id": "", "materialized": false})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"tour_id": id, "materialized": id != ""})
}

func (ec *EditorController) ValidateSlug(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s.ValidateSlug())
}

// Upload stores a gallery file under the session tour's path and appends it
// to the gallery. The draft materializer runs first so the object lands under
// {tourId}/; when materialization fails the bucket root is used instead.
func (ec *EditorController) Upload(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}
	if file.Size > 10*1024*1024 {
		utils.JSONError(c, http.StatusBadRequest, "file must be under 10MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}

	tourID, _ := s.EnsureTourID() // empty id falls back to the bucket root

	path := ec.storage.ObjectPath(tourID, file.Filename)
	url, err := ec.storage.Upload(services.DefaultBucket, path, data)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	section := c.DefaultPostForm("section", models.ImageSectionGallery)
	s.AddGalleryImage(models.GalleryImage{URL: url, Section: section})

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"url":     url,
		"tour_id": tourID,
		"gallery": s.State().Gallery,
	})
}

// Save runs the full save/publish workflow and maps its error taxonomy:
// field errors inline, slug conflicts blocking, primary write failures with
// the server message. Fan-out failures never surface here.
func (ec *EditorController) Save(c *gin.Context) {
	s := ec.session(c)
	if s == nil {
		return
	}

	result, err := s.Save()
	if err != nil {
		var validation *editor.ValidationError
		var slug *editor.SlugError
		switch {
		case errors.As(err, &validation):
			utils.JSONFieldErrors(c, http.StatusBadRequest, validation.Fields)
		case errors.As(err, &slug):
			utils.JSONError(c, http.StatusConflict, slug.Check.Message)
		case errors.Is(err, editor.ErrSaveInFlight):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"tour_id":  result.TourID,
		"saved_at": result.SavedAt,
	})
}
