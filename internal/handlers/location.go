package handlers

import (
	"errors"
	"net/http"

	"planetaryhours/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusLocationSet     = "location_set"
	statusLocationCleared = "location_cleared"

	errGetLocation   = "failed to load location"
	errClearLocation = "failed to clear location"
)

// Request DTO for setting the observer location.
type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

// SetLocationRequest is an exported model for Swagger docs of the setLocation payload.
type SetLocationRequest struct {
	// Latitude in decimal degrees, [-90, 90]
	Latitude float64 `json:"latitude" example:"40.71"`
	// Longitude in decimal degrees, [-180, 180]
	Longitude float64 `json:"longitude" example:"-74.0"`
	// Optional display name
	Label string `json:"label,omitempty" example:"New York"`
}

// @Summary      Get observer location
// @Tags         location
// @Produce      json
// @Success      200  {object}  planetaryhours.ObserverLocation
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/location [get]
// @Security     BearerAuth
func (h *Handler) getLocation(c *gin.Context) {
	ctx := c.Request.Context()
	loc, err := h.services.Location.Get(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetLocation, "location_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc, "is_set": loc.IsSet()})
}

// @Summary      Set observer location
// @Description  Stores the coordinate pair used for every hour computation. (0, 0) is rejected.
// @Tags         location
// @Accept       json
// @Produce      json
// @Param        body  body   SetLocationRequest  true  "Location payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/location [put]
// @Security     BearerAuth
func (h *Handler) setLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	ctx := c.Request.Context()
	loc, err := h.services.Location.Set(ctx, service.LocationParams{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Label:     req.Label,
	})
	if err != nil {
		// Validation failures surface as bad requests with the service message.
		if h.log != nil {
			h.log.Infow("location_set_rejected", "err", err, "lat", req.Latitude, "lon", req.Longitude)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusLocationSet, "location": loc})
}

// @Summary      Clear observer location
// @Tags         location
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/location [delete]
// @Security     BearerAuth
func (h *Handler) clearLocation(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Location.Clear(ctx); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errClearLocation, "location_clear_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusLocationCleared})
}

// @Summary      List location presets
// @Tags         location
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, presets"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/location/presets [get]
// @Security     BearerAuth
func (h *Handler) getPresets(c *gin.Context) {
	presets := h.services.Location.Presets()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(presets),
		"presets": presets,
	})
}

// @Summary      Apply a location preset
// @Tags         location
// @Produce      json
// @Param        name  path   string  true  "Preset name (case-insensitive)"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/location/presets/{name} [post]
// @Security     BearerAuth
func (h *Handler) applyPreset(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	loc, err := h.services.Location.ApplyPreset(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPreset) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to apply preset", "location_preset_failed", err, "name", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusLocationSet, "location": loc})
}
