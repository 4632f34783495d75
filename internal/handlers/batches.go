package handlers

import (
	"net/http"

	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

func (r batchRequest) toParams() service.BatchParams {
	return service.BatchParams{
		Name:                  r.Name,
		StartTime:             int(*r.StartTime),
		ProductKey:            r.ProductKey,
		FermentationPct:       r.FermentationPct.value(),
		TargetReadyTime:       r.TargetReadyTime.minutesPtr(),
		IdealReferenceMinutes: r.IdealReferenceMinutes.ptr(),
	}
}

// @Summary      List batches
// @Tags         batches
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, batches"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/batches [get]
func (h *Handler) listBatches(c *gin.Context) {
	batches, err := h.services.Batches.ListBatches(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "batches_list_failed", err)
		return
	}
	out := make([]batchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchDTO(b))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(out),
		"batches": out,
	})
}

// @Summary      Add batch
// @Description  start_time and target_ready_time are "HH:MM"; fermentation_pct accepts "2,5".
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body      batchRequest  true  "Batch"
// @Success      201   {object}  batchDTO
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/batches [post]
func (h *Handler) addBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	b, err := h.services.Batches.AddBatch(c.Request.Context(), req.toParams())
	if err != nil {
		h.respondServiceError(c, "batch_add_failed", err, "product_key", req.ProductKey)
		return
	}
	c.JSON(http.StatusCreated, toBatchDTO(b))
}

// @Summary      Update batch
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Batch id"
// @Param        body  body      batchRequest  true  "Batch"
// @Success      200   {object}  batchDTO
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/batches/{id} [put]
func (h *Handler) updateBatch(c *gin.Context) {
	id := c.Param("id")
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	b, err := h.services.Batches.UpdateBatch(c.Request.Context(), id, req.toParams())
	if err != nil {
		h.respondServiceError(c, "batch_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, toBatchDTO(b))
}

// @Summary      Remove batch
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/batches/{id} [delete]
func (h *Handler) removeBatch(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Batches.RemoveBatch(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "batch_remove_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted, "id": id})
}

// @Summary      Batch finish time
// @Description  Looks for the finish over the rest of the day, independent of the simulation end.
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch id"
// @Success      200  {object}  finishResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/batches/{id}/finish [get]
func (h *Handler) batchFinish(c *gin.Context) {
	id := c.Param("id")
	est, err := h.services.Batches.FinishTime(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "batch_finish_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, finishResponse{
		BatchID:         est.BatchID,
		FinishTime:      clockPtr(est.FinishTime),
		HorizonExceeded: est.FinishTime == nil,
		Horizon:         clockTime(est.Horizon),
	})
}
