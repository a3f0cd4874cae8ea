package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnscape/cmd/recommender/runner"
	"learnscape/config"
	"learnscape/db"
	"learnscape/eventbus"
	"learnscape/events"
	"learnscape/recommender"
	"learnscape/repositories"
)

func main() {
	config.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicRecommendationEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	cfg := config.GetConfig()
	job := recommender.NewJob(
		repositories.NewExpSummaryRepository(db.Database()),
		repositories.NewRecommendationRepository(db.Database()),
		recommender.NewTopicScorer(cfg.Recommendation),
		cfg.Recommendation,
	)
	run := runner.New(job, bus)

	// 첫 실행은 즉시 1회 수행
	if err := run.RunOnce(ctx, "startup"); err != nil {
		config.Logger.Errorf("recommendation job error: %v", err)
	}

	// 리프레시 요청 이벤트 구독
	go func() {
		groupID := eventbus.GetGroupID() + "-recommender"
		err := bus.Subscribe(ctx, groupID, eventbus.TopicRecommendationEvents, func(ctx context.Context, evt eventbus.Event) error {
			eventType, err := events.PeekEventType(evt.Payload)
			if err != nil {
				return err
			}
			switch eventType {
			case events.RecommendationsRefreshRequested:
				v, err := eventbus.DecodeJSON[events.RecommendationsRefreshRequestedEvent](evt)
				if err != nil {
					return err
				}
				config.Logger.Infof("recommendation refresh requested by %q", v.RequestedBy)
				return run.RunOnce(ctx, "event")
			default:
				// recommendations.computed 등 자신이 발행한 이벤트는 무시 (커밋)
				return nil
			}
		})
		if err != nil && err != context.Canceled {
			config.Logger.Errorf("eventbus subscription error: %v", err)
		}
	}()

	config.Logger.Info("starting recommender service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Asia/Seoul 기준 자정마다 수행
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.Local
	}
	for {
		now := time.Now().In(loc)
		nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
		sleepDur := time.Until(nextMidnight)
		if sleepDur <= 0 {
			sleepDur = time.Minute // fallback
		}
		config.Logger.Infof("recommender sleeping until %s (%s)", nextMidnight.Format(time.RFC3339), loc)

		select {
		case <-time.After(sleepDur):
			if err := run.RunOnce(ctx, "schedule"); err != nil {
				config.Logger.Errorf("recommendation job error: %v", err)
			}
		case <-sigChan:
			config.Logger.Info("received shutdown signal, shutting down recommender service...")
			cancel()
			return
		}
	}
}
