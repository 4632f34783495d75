package handlers

import (
	"errors"
	"net/http"

	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusUpdated = "updated"
	statusDeleted = "deleted"

	errInternal        = "internal error"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps service errors to status codes.
// Only unexpected failures are logged; their message is not exposed.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
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

// @Summary      Get plan
// @Description  Recomputes every batch against the stored schedule. Times are "HH:MM".
// @Tags         plan
// @Produce      json
// @Success      200  {object}  planResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plan [get]
func (h *Handler) getPlan(c *gin.Context) {
	plan, err := h.services.Planner.Plan(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "plan_compute_failed", err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(plan))
}

// @Summary      Get temperature samples
// @Tags         plan
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "interval_min, samples"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/samples [get]
func (h *Handler) getSamples(c *gin.Context) {
	plan, err := h.services.Planner.Plan(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "samples_compute_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interval_min": plan.IntervalMin,
		"samples":      toSamples(plan.Samples),
	})
}
