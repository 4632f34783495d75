package handlers

import (
	"net/http"

	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Solve start time
// @Description  Latest start that still makes the target. feasible=false means even 00:00 is too late.
// @Tags         solve
// @Accept       json
// @Produce      json
// @Param        body  body      solveStartRequest  true  "Product, fermentation and target"
// @Success      200   {object}  solveStartResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/solve/start [post]
func (h *Handler) solveStart(c *gin.Context) {
	var req solveStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	est, err := h.services.Solver.SolveStart(c.Request.Context(), service.SolveStartParams{
		ProductKey:      req.ProductKey,
		FermentationPct: req.FermentationPct.value(),
		Target:          int(*req.Target),
	})
	if err != nil {
		h.respondServiceError(c, "solve_start_failed", err, "product_key", req.ProductKey)
		return
	}
	c.JSON(http.StatusOK, solveStartResponse{
		Start:           clockTime(est.Start),
		Feasible:        est.Feasible,
		PredictedFinish: clockPtr(est.PredictedFinish),
	})
}

// @Summary      Solve fermentation percentage
// @Description  Percentage that makes a batch started at start ready at target. degenerate=true echoes the reference percentage for an empty window.
// @Tags         solve
// @Accept       json
// @Produce      json
// @Param        body  body      solveFermentRequest  true  "Product, start and target"
// @Success      200   {object}  service.FermentEstimate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/solve/fermentation [post]
func (h *Handler) solveFermentation(c *gin.Context) {
	var req solveFermentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	est, err := h.services.Solver.SolveFermentation(c.Request.Context(), service.SolveFermentParams{
		ProductKey: req.ProductKey,
		Start:      int(*req.Start),
		Target:     int(*req.Target),
	})
	if err != nil {
		h.respondServiceError(c, "solve_fermentation_failed", err, "product_key", req.ProductKey)
		return
	}
	c.JSON(http.StatusOK, est)
}
