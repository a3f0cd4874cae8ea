package recommender

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"learnscape/config"
	"learnscape/models"
)

func scorerConfig() config.RecommendationConfig {
	return config.RecommendationConfig{
		SameTopicSimilarity:    5.0,
		DefaultTopicSimilarity: 1.0,
		TopicSimilarities: []config.TopicSimilarity{
			{Topics: []string{"Algebra", "Geometry"}, Score: 3.5},
		},
		RecencyBonusDays: 7,
	}
}

func TestTopicScorerCategoryPairs(t *testing.T) {
	s := NewTopicScorer(scorerConfig())

	ref := models.ExplorationSummary{ID: "ref", Category: "Algebra"}

	sameTopic, err := s.Score(ref, models.ExplorationSummary{ID: "c1", Category: "Algebra"})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, sameTopic)

	pairedTopic, err := s.Score(ref, models.ExplorationSummary{ID: "c2", Category: "Geometry"})
	assert.NoError(t, err)
	assert.Equal(t, 3.5, pairedTopic)

	unrelatedTopic, err := s.Score(ref, models.ExplorationSummary{ID: "c3", Category: "Music"})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, unrelatedTopic)
}

func TestTopicScorerPairOrderIsIrrelevant(t *testing.T) {
	s := NewTopicScorer(scorerConfig())

	forward, err := s.Score(
		models.ExplorationSummary{ID: "a", Category: "Algebra"},
		models.ExplorationSummary{ID: "g", Category: "Geometry"},
	)
	assert.NoError(t, err)

	backward, err := s.Score(
		models.ExplorationSummary{ID: "g", Category: "Geometry"},
		models.ExplorationSummary{ID: "a", Category: "Algebra"},
	)
	assert.NoError(t, err)
	assert.Equal(t, forward, backward)
}

func TestTopicScorerLanguageBonus(t *testing.T) {
	s := NewTopicScorer(scorerConfig())

	ref := models.ExplorationSummary{ID: "ref", Category: "Music", LanguageCode: "en"}

	withBonus, err := s.Score(ref, models.ExplorationSummary{ID: "c1", Category: "Music", LanguageCode: "en"})
	assert.NoError(t, err)
	assert.Equal(t, 7.0, withBonus)

	withoutBonus, err := s.Score(ref, models.ExplorationSummary{ID: "c2", Category: "Music", LanguageCode: "es"})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, withoutBonus)
}

func TestTopicScorerRecencyBonus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewTopicScorer(scorerConfig())
	s.now = func() time.Time { return now }

	ref := models.ExplorationSummary{ID: "ref", Category: "Music"}

	recent, err := s.Score(ref, models.ExplorationSummary{
		ID:               "c1",
		Category:         "Music",
		ContentUpdatedAt: now.Add(-3 * 24 * time.Hour),
	})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, recent)

	stale, err := s.Score(ref, models.ExplorationSummary{
		ID:               "c2",
		Category:         "Music",
		ContentUpdatedAt: now.Add(-30 * 24 * time.Hour),
	})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, stale)

	never, err := s.Score(ref, models.ExplorationSummary{ID: "c3", Category: "Music"})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, never)
}

func TestTopicScorerRejectsMalformedSummaries(t *testing.T) {
	s := NewTopicScorer(scorerConfig())

	_, err := s.Score(models.ExplorationSummary{Category: "Music"}, models.ExplorationSummary{ID: "c", Category: "Music"})
	assert.Error(t, err)

	_, err = s.Score(models.ExplorationSummary{ID: "r"}, models.ExplorationSummary{ID: "c", Category: "Music"})
	assert.Error(t, err)

	_, err = s.Score(models.ExplorationSummary{ID: "r", Category: "Music"}, models.ExplorationSummary{ID: "c"})
	assert.Error(t, err)
}
