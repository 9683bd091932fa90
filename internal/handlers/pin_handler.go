package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hello-globe/backend/internal/geocoder"
	"github.com/hello-globe/backend/internal/media"
	"github.com/hello-globe/backend/internal/models"
	"github.com/hello-globe/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SearchRadiusDegrees is the half-width of the rectangular filter used for
// "pins near a place" queries.
const SearchRadiusDegrees = 5.0

// PinHandler handles HTTP requests related to pins and their photos
type PinHandler struct {
	pinRepository      repositories.PinRepository
	photoRepository    repositories.PhotoRepository
	reactionRepository repositories.ReactionRepository
	userRepository     repositories.UserRepository
	geocoder           geocoder.Resolver
	mediaStore         media.Store
}

// NewPinHandler creates a new PinHandler
func NewPinHandler(
	pinRepo repositories.PinRepository,
	photoRepo repositories.PhotoRepository,
	reactionRepo repositories.ReactionRepository,
	userRepo repositories.UserRepository,
	geo geocoder.Resolver,
	mediaStore media.Store,
) *PinHandler {
	return &PinHandler{
		pinRepository:      pinRepo,
		photoRepository:    photoRepo,
		reactionRepository: reactionRepo,
		userRepository:     userRepo,
		geocoder:           geo,
		mediaStore:         mediaStore,
	}
}

// RegisterPinRoutes registers pin-related routes
func (h *PinHandler) RegisterPinRoutes(g *echo.Group) {
	g.GET("/my-pins/", h.MyPins)
	g.GET("/search/", h.Search)
	g.POST("/add-pin/", h.AddPin)
	g.POST("/edit-pin/:id/", h.EditPin)
	g.GET("/pin/:id/", h.GetPin)
	g.DELETE("/pin/:id/", h.DeletePin)
	g.GET("/users/:username/pins/", h.UserPins)
	g.GET("/my-photos/", h.MyPhotos)
}

// MyPins lists the authenticated user's pins, newest first
func (h *PinHandler) MyPins(c echo.Context) error {
	userID := currentUserID(c)

	pins, err := h.pinRepository.GetPinsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	data := make([]echo.Map, 0, len(pins))
	for i := range pins {
		data = append(data, h.pinJSON(&pins[i], currentUsername(c)))
	}
	return c.JSON(http.StatusOK, echo.Map{"pins": data})
}

// Search geocodes a free-text query and returns pins inside a ±5° box
// around the resolved center.
func (h *PinHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing 'q' parameter"})
	}

	coords, err := h.geocoder.Resolve(c.Request().Context(), query, "", "")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Location not found"})
	}

	pins, err := h.pinRepository.FindPinsInBoundingBox(coords.Lat, coords.Lon, SearchRadiusDegrees)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	results := make([]echo.Map, 0, len(pins))
	for i := range pins {
		pin := &pins[i]
		username := h.usernameFor(pin.UserID)
		results = append(results, echo.Map{
			"id":       pin.ID,
			"lat":      pin.Latitude,
			"lon":      pin.Longitude,
			"caption":  pin.Caption,
			"imageUrl": coverURL(pin),
			"user":     username,
			"city":     pin.City,
			"state":    pin.State,
			"country":  pin.Country,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"query":  query,
		"center": []float64{coords.Lat, coords.Lon},
		"pins":   results,
	})
}

// AddPin creates a pin from a multipart form. Geocoding must succeed before
// anything is persisted: on failure the response is a 400 with a location
// field error and no pin row exists.
func (h *PinHandler) AddPin(c echo.Context) error {
	userID := currentUserID(c)

	var req models.CreatePinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": formErrors(err)})
	}

	coords, err := h.geocoder.Resolve(c.Request().Context(), req.City, req.State, req.Country)
	if err != nil {
		return c.JSON(http.StatusBadRequest, locationError())
	}

	pin := &models.Pin{
		UserID:    userID,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Caption:   req.Caption,
		Latitude:  coords.Lat,
		Longitude: coords.Lon,
	}

	if cover, err := c.FormFile("image"); err == nil && cover != nil {
		url, err := h.mediaStore.Save("pins", cover)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		pin.CoverImageURL = url
	}

	photoURLs, err := h.saveGalleryUploads(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.pinRepository.CreatePinWithPhotos(pin, photoURLs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"id":      pin.ID,
		"city":    pin.City,
		"state":   pin.State,
		"country": pin.Country,
		"caption": pin.Caption,
		"lat":     pin.Latitude,
		"lon":     pin.Longitude,
	})
}

// EditPin updates an owned pin. Coordinates are re-resolved only when one of
// the location fields actually changed; on geocode failure the whole update
// is rejected and the stored pin keeps its old values. Photo deletions are
// applied before the slot count for new photos is computed.
func (h *PinHandler) EditPin(c echo.Context) error {
	userID := currentUserID(c)

	pinID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pin ID")
	}

	pin, err := h.pinRepository.GetPinByID(uint(pinID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if pin.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this pin")
	}

	var req models.UpdatePinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": formErrors(err)})
	}

	locationChanged := req.City != pin.City || req.State != pin.State || req.Country != pin.Country
	if locationChanged {
		coords, err := h.geocoder.Resolve(c.Request().Context(), req.City, req.State, req.Country)
		if err != nil {
			return c.JSON(http.StatusBadRequest, locationError())
		}
		pin.Latitude = coords.Lat
		pin.Longitude = coords.Lon
	}

	pin.City = req.City
	pin.State = req.State
	pin.Country = req.Country
	pin.Caption = req.Caption

	if cover, err := c.FormFile("image"); err == nil && cover != nil {
		url, err := h.mediaStore.Save("pins", cover)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		pin.CoverImageURL = url
	}

	deleteIDs := parseIDList(req.PhotosToDelete)

	photoURLs, err := h.saveGalleryUploads(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.pinRepository.UpdatePinWithPhotos(pin, deleteIDs, photoURLs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := h.pinJSON(pin, currentUsername(c))
	resp["updated"] = true
	resp["isOwner"] = true
	return c.JSON(http.StatusOK, resp)
}

// GetPin returns one pin with its gallery, reaction counts, and the
// authenticated user's own reaction.
func (h *PinHandler) GetPin(c echo.Context) error {
	pinID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pin ID")
	}

	pin, err := h.pinRepository.GetPinByID(uint(pinID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	counts, err := h.reactionRepository.CountsByEmoji(pin.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	userReaction, err := h.reactionRepository.GetUserReaction(pin.ID, currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	photos := make([]echo.Map, 0, len(pin.Photos))
	for _, photo := range pin.Photos {
		photos = append(photos, echo.Map{"id": photo.ID, "url": photo.ImageURL})
	}

	resp := echo.Map{
		"id":              pin.ID,
		"lat":             pin.Latitude,
		"lon":             pin.Longitude,
		"caption":         pin.Caption,
		"imageUrl":        coverURL(pin),
		"photos":          photos,
		"user":            h.usernameFor(pin.UserID),
		"city":            pin.City,
		"state":           pin.State,
		"country":         pin.Country,
		"reaction_counts": counts,
	}
	if userReaction != "" {
		resp["user_reaction"] = userReaction
	}
	return c.JSON(http.StatusOK, resp)
}

// DeletePin removes an owned pin, cascading to its photos and reactions
func (h *PinHandler) DeletePin(c echo.Context) error {
	pinID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid pin ID")
	}

	err = h.pinRepository.DeletePin(uint(pinID), currentUserID(c))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Pin not found")
		}
		if err == repositories.ErrNotPinOwner {
			return echo.NewHTTPError(http.StatusForbidden, "You do not own this pin")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// UserPins lists another user's pins with an isOwner flag
func (h *PinHandler) UserPins(c echo.Context) error {
	username := c.Param("username")

	target, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pins, err := h.pinRepository.GetPinsByUser(target.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isOwner := target.ID == currentUserID(c)
	data := make([]echo.Map, 0, len(pins))
	for i := range pins {
		entry := h.pinJSON(&pins[i], target.Username)
		entry["isOwner"] = isOwner
		data = append(data, entry)
	}
	return c.JSON(http.StatusOK, echo.Map{"pins": data})
}

// MyPhotos returns the user's covers and gallery photos flattened into one
// list, newest first.
func (h *PinHandler) MyPhotos(c echo.Context) error {
	items, err := h.photoRepository.GetGalleryForUser(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"photos": items})
}

// saveGalleryUploads stores every "photos" file part and returns their URLs
// in upload order. The slot budget is applied later, at the storage layer.
func (h *PinHandler) saveGalleryUploads(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	files := form.File["photos"]
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.mediaStore.Save("pin_photos", file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// pinJSON builds the standard pin payload with gallery URLs and slot count
func (h *PinHandler) pinJSON(pin *models.Pin, username string) echo.Map {
	photoURLs := make([]string, 0, len(pin.Photos))
	for _, photo := range pin.Photos {
		photoURLs = append(photoURLs, photo.ImageURL)
	}

	photoCount := len(photoURLs)
	if pin.CoverImageURL != "" {
		photoCount++
	}

	return echo.Map{
		"id":         pin.ID,
		"lat":        pin.Latitude,
		"lon":        pin.Longitude,
		"caption":    pin.Caption,
		"imageUrl":   coverURL(pin),
		"photos":     photoURLs,
		"photoCount": photoCount,
		"user":       username,
		"city":       pin.City,
		"state":      pin.State,
		"country":    pin.Country,
	}
}

func (h *PinHandler) usernameFor(userID uint) string {
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return ""
	}
	return user.Username
}

// coverURL returns the cover image URL or nil so the JSON field is null
// when there is no cover.
func coverURL(pin *models.Pin) interface{} {
	if pin.CoverImageURL == "" {
		return nil
	}
	return pin.CoverImageURL
}

// parseIDList parses a comma-separated ID list, skipping non-numeric parts
func parseIDList(csv string) []uint {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
