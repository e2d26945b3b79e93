package handlers

import (
	"planetaryhours/internal/logger"
	"planetaryhours/internal/service"

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
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket hour stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerHourRoutes(api)
		h.registerLocationRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerHourRoutes(api *gin.RouterGroup) {
	hours := api.Group("/hours")
	{
		// ?offset=N previews the hour N whole hours from now
		hours.GET("/current", h.getCurrentHour)
		hours.GET("/state", h.getHourState)
	}
}

func (h *Handler) registerLocationRoutes(api *gin.RouterGroup) {
	location := api.Group("/location")
	{
		location.GET("", h.getLocation)
		// Body example: {"latitude":40.71,"longitude":-74.0,"label":"New York"}
		location.PUT("", h.setLocation)
		location.DELETE("", h.clearLocation)
		location.GET("/presets", h.getPresets)
		location.POST("/presets/:name", h.applyPreset)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
