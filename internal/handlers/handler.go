package handlers

import (
	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live plan stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerPlanRoutes(api)
		h.registerScheduleRoutes(api)
		h.registerProductRoutes(api)
		h.registerBatchRoutes(api)
		h.registerSolveRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerPlanRoutes(api *gin.RouterGroup) {
	api.GET("/plan", h.getPlan)
	api.GET("/samples", h.getSamples)
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	// Body example: {"breakpoints":[{"time":"00:00","temp_c":24},{"time":"02:00","temp_c":"26,5"}]}
	api.GET("/schedule", h.getSchedule)
	api.PUT("/schedule", h.putSchedule)
	// Body example: {"end":"06:00","interval_min":10}
	api.PUT("/simulation", h.putSimulation)
}

func (h *Handler) registerProductRoutes(api *gin.RouterGroup) {
	products := api.Group("/products")
	{
		products.GET("", h.listProducts)
		products.PUT("/:key", h.putProduct)
		products.DELETE("/:key", h.deleteProduct)
	}
}

func (h *Handler) registerBatchRoutes(api *gin.RouterGroup) {
	batches := api.Group("/batches")
	{
		batches.GET("", h.listBatches)
		// Body example: {"start_time":"01:30","product_key":"forma","fermentation_pct":"2,0"}
		batches.POST("", h.addBatch)
		batches.PUT("/:id", h.updateBatch)
		batches.DELETE("/:id", h.removeBatch)
		batches.GET("/:id/finish", h.batchFinish)
	}
}

func (h *Handler) registerSolveRoutes(api *gin.RouterGroup) {
	solve := api.Group("/solve")
	{
		solve.POST("/start", h.solveStart)
		solve.POST("/fermentation", h.solveFermentation)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
