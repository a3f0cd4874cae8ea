package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"learnscape/config"
	"learnscape/eventbus"
	"learnscape/events"
	"learnscape/recommender"
)

// Runner serializes job executions. Scheduled runs and event-triggered runs
// share one mutex; a trigger that arrives while a run is in flight is
// coalesced into that run instead of queueing a second pass over the same
// corpus.
type Runner struct {
	job *recommender.Job
	bus eventbus.EventBus
	mu  sync.Mutex
}

func New(job *recommender.Job, bus eventbus.EventBus) *Runner {
	return &Runner{job: job, bus: bus}
}

// RunOnce executes one recommendation pass and publishes a completion event.
// trigger names what started the run ("schedule", "startup", "event").
func (r *Runner) RunOnce(ctx context.Context, trigger string) error {
	if !r.mu.TryLock() {
		config.Logger.Infof("recommendation job already running, coalescing trigger=%s", trigger)
		return nil
	}
	defer r.mu.Unlock()

	start := time.Now()
	result, err := r.job.Run(ctx)
	if err != nil {
		return fmt.Errorf("recommendation job (trigger=%s): %w", trigger, err)
	}

	if err := r.publishComputed(ctx, result, time.Since(start)); err != nil {
		// 완료 이벤트 발행 실패는 잡 자체의 실패로 취급하지 않는다.
		config.Logger.Errorf("failed to publish recommendations.computed event: %v", err)
	}
	return nil
}

func (r *Runner) publishComputed(ctx context.Context, result recommender.Result, elapsed time.Duration) error {
	payload := events.RecommendationsComputedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.RecommendationsComputed,
			Timestamp: time.Now(),
			Source:    "recommender",
			Version:   "1.0",
		},
		RecordsWritten: result.RecordsWritten,
		RecordsPruned:  result.RecordsPruned,
		DurationMs:     elapsed.Milliseconds(),
	}

	evt, err := eventbus.NewJSONEvent(payload.ID, payload, 0)
	if err != nil {
		return err
	}
	return r.bus.Publish(ctx, eventbus.TopicRecommendationEvents.Base(), evt)
}
