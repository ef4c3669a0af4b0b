package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"apichat/internal/api/handler"
	"apichat/internal/api/middleware"
)

// Router sets up all API routes
func Router(llm handler.Chatter) *gin.Engine {
	router := gin.New()

	// Apply middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	chatHandler := handler.NewChatHandler(llm)

	// API routes
	routes := router.Group("/api")
	{
		routes.GET("/healthcheck", healthHandler.Check)
		routes.POST("/chat", chatHandler.Handle)
	}

	// Operations
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
