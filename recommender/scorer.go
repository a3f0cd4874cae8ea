package recommender

import (
	"fmt"
	"time"

	"learnscape/config"
	"learnscape/models"
)

// Scorer computes the similarity of a candidate exploration to a reference
// exploration. Implementations must be pure: no side effects, no mutation
// of either summary, and identical inputs yield identical scores within one
// job run. Score(a, b) need not equal Score(b, a).
type Scorer interface {
	Score(reference, candidate models.ExplorationSummary) (float64, error)
}

// TopicScorer is the default similarity heuristic. The base score is the
// category-pair similarity from the configured table (same category scores
// highest, unlisted pairs fall back to the default), a candidate in the
// same language gets +2, and a candidate whose content was updated within
// the recency window gets +1.
type TopicScorer struct {
	sameTopic     float64
	defaultTopic  float64
	pairs         map[topicPair]float64
	recencyWindow time.Duration

	// now is swappable for tests.
	now func() time.Time
}

type topicPair struct {
	a, b string
}

// normalizedPair builds an order-insensitive key for a category pair.
func normalizedPair(a, b string) topicPair {
	if a > b {
		a, b = b, a
	}
	return topicPair{a: a, b: b}
}

func NewTopicScorer(cfg config.RecommendationConfig) *TopicScorer {
	pairs := make(map[topicPair]float64, len(cfg.TopicSimilarities))
	for _, ts := range cfg.TopicSimilarities {
		if len(ts.Topics) != 2 {
			continue
		}
		pairs[normalizedPair(ts.Topics[0], ts.Topics[1])] = ts.Score
	}
	return &TopicScorer{
		sameTopic:     cfg.SameTopicSimilarity,
		defaultTopic:  cfg.DefaultTopicSimilarity,
		pairs:         pairs,
		recencyWindow: time.Duration(cfg.RecencyBonusDays) * 24 * time.Hour,
		now:           time.Now,
	}
}

const (
	sameLanguageBonus = 2.0
	recencyBonus      = 1.0
)

// Score implements Scorer. A summary missing the fields the heuristic
// needs is an error, not a zero score; the job run fails rather than
// silently skipping malformed input.
func (s *TopicScorer) Score(reference, candidate models.ExplorationSummary) (float64, error) {
	if reference.ID == "" || candidate.ID == "" {
		return 0, fmt.Errorf("exploration summary without id")
	}
	if reference.Category == "" {
		return 0, fmt.Errorf("exploration %s has no category", reference.ID)
	}
	if candidate.Category == "" {
		return 0, fmt.Errorf("exploration %s has no category", candidate.ID)
	}

	score := s.topicSimilarity(reference.Category, candidate.Category)
	if reference.LanguageCode != "" && reference.LanguageCode == candidate.LanguageCode {
		score += sameLanguageBonus
	}
	if s.recencyWindow > 0 && !candidate.ContentUpdatedAt.IsZero() &&
		s.now().Sub(candidate.ContentUpdatedAt) <= s.recencyWindow {
		score += recencyBonus
	}
	return score, nil
}

func (s *TopicScorer) topicSimilarity(a, b string) float64 {
	if a == b {
		return s.sameTopic
	}
	if v, ok := s.pairs[normalizedPair(a, b)]; ok {
		return v
	}
	return s.defaultTopic
}
