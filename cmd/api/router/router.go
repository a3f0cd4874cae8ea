package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"learnscape/cmd/api/handlers"
	"learnscape/cmd/api/middleware"
	"learnscape/cmd/api/services"
	"learnscape/config"
	"learnscape/db"
	"learnscape/eventbus"
	"learnscape/repositories"
)

func New(cfg *config.AppConfig, bus eventbus.EventBus) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	summaryRepo := repositories.NewExpSummaryRepository(db.Database())
	recommendationRepo := repositories.NewRecommendationRepository(db.Database())
	ratingRepo := repositories.NewRatingRepository(db.Database())
	flagRepo := repositories.NewFlagReportRepository(db.Database())

	eventsSvc := services.NewEventService(bus)
	explorationsSvc := services.NewExplorationService(summaryRepo)
	recommendationsSvc := services.NewRecommendationService(recommendationRepo, summaryRepo, cfg.API.MaxPlaythroughRecommendations)
	ratingsSvc := services.NewRatingService(ratingRepo)
	flagsSvc := services.NewFlagService(flagRepo, eventsSvc)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/explorations", handlers.ListExplorationsHandler(explorationsSvc))
		api.GET("/explorations/:id", handlers.GetExplorationHandler(explorationsSvc))
		api.GET("/explorations/:id/recommendations", handlers.GetRecommendationsHandler(recommendationsSvc))
		api.GET("/explorations/:id/rating", handlers.GetRatingHandler(ratingsSvc))
		api.PUT("/explorations/:id/rating", handlers.PutRatingHandler(ratingsSvc))
		api.POST("/explorations/:id/flag", handlers.PostFlagHandler(flagsSvc))

		api.POST("/internal/recommendations/refresh", handlers.PostRefreshHandler(eventsSvc))
	}

	return r
}
