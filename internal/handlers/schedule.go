package handlers

import (
	"net/http"

	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Get temperature schedule
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  scheduleResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedule [get]
func (h *Handler) getSchedule(c *gin.Context) {
	schedule, err := h.services.Schedule.GetSchedule(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "schedule_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(schedule))
}

// @Summary      Replace temperature schedule
// @Description  Breakpoints are stored sorted by time. temp_c accepts "26,5" as well as 26.5.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      scheduleRequest  true  "Breakpoints"
// @Success      200   {object}  scheduleResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedule [put]
func (h *Handler) putSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	schedule, err := h.services.Schedule.SetSchedule(c.Request.Context(), req.toModel())
	if err != nil {
		h.respondServiceError(c, "schedule_set_failed", err, "breakpoints", len(req.Breakpoints))
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(schedule))
}

// @Summary      Set simulation window
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      simulationRequest  true  "End time and sampling interval"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/simulation [put]
func (h *Handler) putSimulation(c *gin.Context) {
	var req simulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params := service.SimulationParams{End: int(*req.End), IntervalMin: req.IntervalMin}
	if err := h.services.Schedule.SetSimulation(c.Request.Context(), params); err != nil {
		h.respondServiceError(c, "simulation_set_failed", err, "end", params.End, "interval_min", params.IntervalMin)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       statusUpdated,
		"end":          *req.End,
		"interval_min": req.IntervalMin,
	})
}
