package recommender

import (
	"fmt"
	"sort"

	"learnscape/models"
)

// ScoredCandidate is one qualifying (candidate, score) pair emitted by the
// comparator for a reference exploration. It only exists inside a job run;
// scores are discarded before persistence.
type ScoredCandidate struct {
	ExplorationID string
	Score         float64
}

// Comparator scores one reference exploration against the full broadcast
// snapshot of summaries and keeps the candidates at or above the threshold.
type Comparator struct {
	scorer    Scorer
	threshold float64
}

func NewComparator(scorer Scorer, threshold float64) *Comparator {
	return &Comparator{scorer: scorer, threshold: threshold}
}

// Compare emits the qualifying candidates for one reference exploration.
// Self comparisons are skipped regardless of score. A scorer error aborts
// the comparison; there is no local retry.
func (c *Comparator) Compare(reference models.ExplorationSummary, snapshot []models.ExplorationSummary) ([]ScoredCandidate, error) {
	var out []ScoredCandidate
	for _, candidate := range snapshot {
		if candidate.ID == reference.ID {
			continue
		}
		score, err := c.scorer.Score(reference, candidate)
		if err != nil {
			return nil, fmt.Errorf("score %s against %s: %w", candidate.ID, reference.ID, err)
		}
		if score >= c.threshold {
			out = append(out, ScoredCandidate{ExplorationID: candidate.ID, Score: score})
		}
	}
	return out, nil
}

// sortAndSlice sorts a reference's candidates by score descending and keeps
// at most max ids. The sort is stable, so equal scores keep the snapshot
// emission order.
func sortAndSlice(candidates []ScoredCandidate, max int) []string {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ExplorationID)
	}
	return ids
}
