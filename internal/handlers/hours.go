package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"planetaryhours/internal/astro"
	"planetaryhours/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errGetHour       = "failed to compute planetary hour"
	errGetSnapshot   = "failed to load hour snapshot"
	errNoLocationMsg = "no observer location set"
	errNoHourMsg     = "no planetary hour available for this location and time"
	errInvalidOffset = "invalid 'offset': expected a whole number of hours"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current planetary hour
// @Description  Computes the hour containing now, or now shifted by ?offset whole hours.
// @Tags         hours
// @Produce      json
// @Param        offset  query  int  false  "Whole hours to add to now (may be negative)"  example(3)
// @Success      200  {object}  planetaryhours.PlanetaryHour
// @Failure      400  {object}  map[string]string  "no location set or bad offset"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string  "sun never rises or sets here"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/hours/current [get]
// @Security     BearerAuth
func (h *Handler) getCurrentHour(c *gin.Context) {
	ctx := c.Request.Context()

	offset := 0
	if qs := c.Query("offset"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidOffset})
			return
		}
		offset = v
	}

	hour, err := h.services.Hours.Current(ctx, offset)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoLocation):
			c.JSON(http.StatusBadRequest, gin.H{"error": errNoLocationMsg})
		case errors.Is(err, astro.ErrNoPlanetaryHour):
			c.JSON(http.StatusNotFound, gin.H{"error": errNoHourMsg})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errGetHour, "hours_current_failed", err, "offset", offset)
		}
		return
	}

	c.JSON(http.StatusOK, hour)
}

// @Summary      Last persisted hour snapshot
// @Description  Returns the hour the background refresher last stored. ComputedAt is zero if it has not run yet.
// @Tags         hours
// @Produce      json
// @Success      200  {object}  planetaryhours.PlanetaryHour
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/hours/state [get]
// @Security     BearerAuth
func (h *Handler) getHourState(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.services.Hours.Snapshot(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetSnapshot, "hours_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
