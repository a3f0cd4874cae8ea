package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	RecommendationsRefreshRequested EventType = "recommendations.refresh_requested"
	RecommendationsComputed         EventType = "recommendations.computed"
	ExplorationFlagged              EventType = "exploration.flagged"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// RecommendationsRefreshRequestedEvent 추천 배치 잡 실행 요청 이벤트
type RecommendationsRefreshRequestedEvent struct {
	BaseEvent
	RequestedBy string `json:"requested_by"`
}

// RecommendationsComputedEvent 추천 배치 잡 완료 이벤트
type RecommendationsComputedEvent struct {
	BaseEvent
	RecordsWritten int   `json:"records_written"`
	RecordsPruned  int64 `json:"records_pruned"`
	DurationMs     int64 `json:"duration_ms"`
}

// ExplorationFlaggedEvent 학습자 신고 이벤트 (모더레이션 서비스가 구독)
type ExplorationFlaggedEvent struct {
	BaseEvent
	ExplorationID string `json:"exploration_id"`
	UserID        string `json:"user_id"`
	ReportText    string `json:"report_text"`
}

// SerializeEvent 이벤트를 JSON으로 직렬화하고 타입 정보 반환
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case RecommendationsRefreshRequestedEvent:
		eventType = e.Type
	case RecommendationsComputedEvent:
		eventType = e.Type
	case ExplorationFlaggedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}
	return data, eventType, nil
}

// PeekEventType 페이로드에서 이벤트 타입만 먼저 확인한다.
// 구독자는 타입에 따라 알맞은 구조체로 다시 언마샬한다.
func PeekEventType(data []byte) (EventType, error) {
	var head struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("failed to peek event type: %w", err)
	}
	if head.Type == "" {
		return "", fmt.Errorf("event payload has no type field")
	}
	return head.Type, nil
}
