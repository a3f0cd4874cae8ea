package recommender

import (
	"fmt"
	"testing"

	"learnscape/models"
)

// stubScorer returns canned scores keyed by "<ref>-><candidate>". Unknown
// pairs score zero.
type stubScorer struct {
	scores map[string]float64
	err    error
}

func (s *stubScorer) Score(reference, candidate models.ExplorationSummary) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.scores[reference.ID+"->"+candidate.ID], nil
}

func summaries(ids ...string) []models.ExplorationSummary {
	out := make([]models.ExplorationSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.ExplorationSummary{ID: id, Category: "Algebra"})
	}
	return out
}

func TestCompareSkipsSelf(t *testing.T) {
	snapshot := summaries("A", "B")
	scorer := &stubScorer{scores: map[string]float64{
		"A->A": 100, // never consulted
		"A->B": 5,
	}}
	c := NewComparator(scorer, 3.0)

	got, err := c.Compare(snapshot[0], snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ExplorationID != "B" {
		t.Fatalf("expected only B, got %v", got)
	}
}

func TestCompareAppliesThresholdInclusively(t *testing.T) {
	snapshot := summaries("A", "B", "C", "D")
	scorer := &stubScorer{scores: map[string]float64{
		"A->B": 3.0, // exactly at threshold, kept
		"A->C": 2.9, // below, dropped
		"A->D": 5.1,
	}}
	c := NewComparator(scorer, 3.0)

	got, err := c.Compare(snapshot[0], snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 qualifying candidates, got %v", got)
	}
	for _, cand := range got {
		if cand.ExplorationID == "C" {
			t.Fatalf("candidate below threshold must be dropped: %v", got)
		}
	}
}

func TestCompareWrapsScorerError(t *testing.T) {
	snapshot := summaries("A", "B")
	c := NewComparator(&stubScorer{err: fmt.Errorf("boom")}, 3.0)

	if _, err := c.Compare(snapshot[0], snapshot); err == nil {
		t.Fatal("expected scorer error to propagate")
	}
}

func TestSortAndSliceOrdersByScoreDescending(t *testing.T) {
	candidates := []ScoredCandidate{
		{ExplorationID: "B", Score: 3.0},
		{ExplorationID: "D", Score: 5.1},
		{ExplorationID: "E", Score: 4.2},
	}

	ids := sortAndSlice(candidates, 2)
	if len(ids) != 2 || ids[0] != "D" || ids[1] != "E" {
		t.Fatalf("expected [D E], got %v", ids)
	}
}

func TestSortAndSliceKeepsEmissionOrderOnTies(t *testing.T) {
	candidates := []ScoredCandidate{
		{ExplorationID: "X", Score: 4.0},
		{ExplorationID: "Y", Score: 4.0},
		{ExplorationID: "Z", Score: 4.0},
	}

	ids := sortAndSlice(candidates, 10)
	if ids[0] != "X" || ids[1] != "Y" || ids[2] != "Z" {
		t.Fatalf("stable sort must keep emission order on ties, got %v", ids)
	}
}
