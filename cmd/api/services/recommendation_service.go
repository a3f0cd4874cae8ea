package services

import (
	"context"
	"errors"
	"math/rand"

	"go.mongodb.org/mongo-driver/mongo"

	"learnscape/dto"
	"learnscape/models"
)

// RecommendationReader is the read surface of the recommendation store.
type RecommendationReader interface {
	FindByID(ctx context.Context, expID string) (*models.ExplorationRecommendations, error)
}

// RecommendationService assembles the end-of-exploration recommendation
// response: author-recommended explorations plus a bounded random sample
// of the batch-computed system recommendations.
type RecommendationService struct {
	recommendations RecommendationReader
	summaries       SummaryReader
	maxSystemPicks  int
}

func NewRecommendationService(recommendations RecommendationReader, summaries SummaryReader, maxSystemPicks int) *RecommendationService {
	if maxSystemPicks <= 0 {
		maxSystemPicks = 4
	}
	return &RecommendationService{
		recommendations: recommendations,
		summaries:       summaries,
		maxSystemPicks:  maxSystemPicks,
	}
}

// ForExploration returns the summaries to recommend after a learner
// finishes expID. System picks are sampled from the stored record, minus
// the author-recommended ids (no duplicates between the two sources) and
// minus the exploration itself. A missing record simply means no system
// picks; it is not an error.
func (s *RecommendationService) ForExploration(ctx context.Context, expID string, authorRecommendedIDs []string, includeSystem bool) (dto.RecommendationsDTO, error) {
	var systemPicks []string
	if includeSystem {
		rec, err := s.recommendations.FindByID(ctx, expID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return dto.RecommendationsDTO{}, err
		}
		if rec != nil {
			systemPicks = sampleSystemPicks(rec.RecommendedExplorationIDs, authorRecommendedIDs, expID, s.maxSystemPicks)
		}
	}

	recommendedIDs := make([]string, 0, len(authorRecommendedIDs)+len(systemPicks))
	seen := map[string]bool{expID: true}
	for _, id := range append(append([]string{}, authorRecommendedIDs...), systemPicks...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		recommendedIDs = append(recommendedIDs, id)
	}

	summaries, err := s.summaries.FindByIDs(ctx, recommendedIDs)
	if err != nil {
		return dto.RecommendationsDTO{}, err
	}

	// $in does not preserve order; re-emit author picks before system picks.
	byID := make(map[string]models.ExplorationSummary, len(summaries))
	for _, summary := range summaries {
		byID[summary.ID] = summary
	}
	out := dto.RecommendationsDTO{Summaries: make([]dto.ExplorationSummaryDTO, 0, len(summaries))}
	for _, id := range recommendedIDs {
		if summary, ok := byID[id]; ok {
			out.Summaries = append(out.Summaries, dto.NewExplorationSummaryDTO(summary))
		}
	}
	return out, nil
}

// sampleSystemPicks filters the stored ids and draws a random sample of at
// most max of them.
func sampleSystemPicks(storedIDs, authorIDs []string, expID string, max int) []string {
	exclude := map[string]bool{expID: true}
	for _, id := range authorIDs {
		exclude[id] = true
	}

	candidates := make([]string, 0, len(storedIDs))
	for _, id := range storedIDs {
		if !exclude[id] {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) > max {
		rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		candidates = candidates[:max]
	}
	return candidates
}
