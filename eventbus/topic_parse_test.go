package eventbus

import (
	"testing"
	"time"
)

func TestParseRetryDelayFromTopicName(t *testing.T) {
	cases := []struct {
		name  string
		delay time.Duration
		ok    bool
	}{
		{"learnscape.recommendation.events.retry.1", 10 * time.Second, true},
		{"learnscape.recommendation.events.retry.3", 1 * time.Minute, true},
		{"learnscape.recommendation.events.retry.5", 10 * time.Minute, true},
		{"learnscape.recommendation.events.retry.0", 0, false},
		{"learnscape.recommendation.events.retry.6", 0, false},
		{"learnscape.recommendation.events.retry.x", 0, false},
		{"learnscape.recommendation.events", 0, false},
		{"learnscape.recommendation.events.dlq", 0, false},
	}

	for _, c := range cases {
		delay, ok := ParseRetryDelayFromTopicName(c.name)
		if ok != c.ok || delay != c.delay {
			t.Fatalf("%s: expected (%v, %v), got (%v, %v)", c.name, c.delay, c.ok, delay, ok)
		}
	}
}

func TestRetryTopicNamesRoundTrip(t *testing.T) {
	topic := NewTopic("learnscape.moderation.events")
	for i, name := range topic.GetRetryTopics() {
		delay, ok := ParseRetryDelayFromTopicName(name)
		if !ok {
			t.Fatalf("generated retry topic %q must parse", name)
		}
		if delay != RetryDelays[i] {
			t.Fatalf("topic %q: expected delay %v, got %v", name, RetryDelays[i], delay)
		}
	}
}

func TestGetRetryTopicBounds(t *testing.T) {
	topic := NewTopic("learnscape.moderation.events")

	if _, err := topic.GetRetryTopic(0); err != ErrMaxRetryExceeded {
		t.Fatalf("retry count 0 must exceed bounds, got %v", err)
	}
	if _, err := topic.GetRetryTopic(len(RetryDelays) + 1); err != ErrMaxRetryExceeded {
		t.Fatalf("retry count above schedule must exceed bounds, got %v", err)
	}
	name, err := topic.GetRetryTopic(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "learnscape.moderation.events.retry.1" {
		t.Fatalf("unexpected retry topic name %q", name)
	}
}
