package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/handlers"
	"github.com/richicicero94/tessera-fedelt-ifonelab/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LoyaltyFacade, health handlers.HealthFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/profile", profileHandler.Get)
	user.GET("/loyalty-card", profileHandler.LoyaltyCard)

	merchant := api.Group("/merchant")
	merchant.Use(middleware.AuthRequired(facade))
	merchant.POST("/add-points", pointsHandler.AddPoints)

	return engine
}
