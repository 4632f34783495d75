package handlers

import (
	"errors"
	"net/http"
	"time"

	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD"

	layoutMinute = "2006-01-02T15:04"
)

var errLogTime = errors.New("unrecognized time")

// logsQuery is the query string of GET /api/v1/logs.
type logsQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Type       string `form:"type"`
	BatchID    string `form:"batch_id"`
	ProductKey string `form:"product_key"`
}

// @Summary      List logs
// @Description  Plan events oldest first. A date-only 'from' starts at midnight and a date-only 'to' covers the whole day (UTC).
// @Tags         logs
// @Produce      json
// @Param        from         query   string  false  "Start of range (RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to           query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        type         query   string  false  "Event type"  Enums(SCHEDULE_CHANGE,SIMULATION_CHANGE,PRODUCT_CHANGE,BATCH_CHANGE,BATCH_READY,SOLVE)
// @Param        batch_id     query   string  false  "Only events of this batch"  example(massa-1)
// @Param        product_key  query   string  false  "Only events of this product"  example(forma)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	var q logsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	f := service.LogFilter{Type: q.Type, BatchID: q.BatchID, ProductKey: q.ProductKey}
	var err error
	if f.From, err = parseLogBound(q.From, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
		return
	}
	if f.To, err = parseLogBound(q.To, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), f)
	if err != nil {
		h.respondServiceError(c, "logs_list_failed", err, "filter", f)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// parseLogBound reads one end of a log range. Empty means unbounded.
// A bare date is midnight, or the last instant of that day when endOfDay is set.
func parseLogBound(s string, endOfDay bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if endOfDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return t, nil
	}
	for _, layout := range []string{time.RFC3339, layoutMinute} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errLogTime
}
