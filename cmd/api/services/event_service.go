package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"learnscape/eventbus"
	"learnscape/events"
	"learnscape/models"
)

// EventService API 서버용 이벤트 발행 서비스
type EventService struct {
	bus eventbus.EventBus
}

func NewEventService(bus eventbus.EventBus) *EventService {
	return &EventService{bus: bus}
}

// PublishExplorationFlagged 학습자 신고 이벤트 발행 (모더레이션 토픽)
func (s *EventService) PublishExplorationFlagged(ctx context.Context, report *models.FlagReport) error {
	e := events.ExplorationFlaggedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.ExplorationFlagged,
			Timestamp: time.Now(),
			Source:    "api",
			Version:   "1.0",
		},
		ExplorationID: report.ExplorationID,
		UserID:        report.UserID,
		ReportText:    report.ReportText,
	}

	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicModerationEvents.Base(), evt)
}

// PublishRecommendationsRefreshRequested 추천 배치 잡 실행 요청 이벤트 발행
func (s *EventService) PublishRecommendationsRefreshRequested(ctx context.Context, requestedBy string) error {
	e := events.RecommendationsRefreshRequestedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      events.RecommendationsRefreshRequested,
			Timestamp: time.Now(),
			Source:    "api",
			Version:   "1.0",
		},
		RequestedBy: requestedBy,
	}

	evt, err := eventbus.NewJSONEvent("", e, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicRecommendationEvents.Base(), evt)
}
