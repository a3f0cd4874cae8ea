package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"learnscape/cmd/api/router"
	"learnscape/config"
	"learnscape/db"
	"learnscape/eventbus"
)

// @title           Learnscape API
// @version         1.0
// @description     API for browsing explorations and end-of-exploration recommendations
// @BasePath        /api/v1
func main() {
	config.InitApp()

	if err := db.Init(context.Background()); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	for _, t := range eventbus.AllTopics {
		if err := eventbus.EnsureTopics(brokers, t, 3); err != nil {
			config.Logger.Errorf("failed to ensure eventbus topics for %s: %v", t.Base(), err)
		}
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	cfg := config.GetConfig()
	r := router.New(&cfg, bus)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
