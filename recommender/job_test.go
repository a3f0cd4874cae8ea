package recommender

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"learnscape/config"
	"learnscape/models"
)

type fakeLister struct {
	snapshot []models.ExplorationSummary
	err      error
}

func (f *fakeLister) GetAllNonDeleted(ctx context.Context) ([]models.ExplorationSummary, error) {
	return f.snapshot, f.err
}

type fakeStore struct {
	upserted    [][]models.ExplorationRecommendations
	keptIDs     [][]string
	upsertErr   error
	pruneResult int64
}

func (f *fakeStore) BulkUpsert(ctx context.Context, recs []models.ExplorationRecommendations) (int, error) {
	if f.upsertErr != nil {
		return 0, f.upsertErr
	}
	f.upserted = append(f.upserted, recs)
	return len(recs), nil
}

func (f *fakeStore) DeleteAllExcept(ctx context.Context, keepIDs []string) (int64, error) {
	f.keptIDs = append(f.keptIDs, keepIDs)
	return f.pruneResult, nil
}

func jobConfig(maxRecs int) config.RecommendationConfig {
	return config.RecommendationConfig{
		SimilarityThreshold: 3.0,
		MaxRecommendations:  maxRecs,
		WorkerCount:         3,
	}
}

func recordIDs(recs []models.ExplorationRecommendations) map[string][]string {
	out := make(map[string][]string, len(recs))
	for _, r := range recs {
		out[r.ID] = r.RecommendedExplorationIDs
	}
	return out
}

func TestJobRunRanksFiltersAndTruncates(t *testing.T) {
	lister := &fakeLister{snapshot: summaries("A", "B", "C", "D")}
	store := &fakeStore{}
	scorer := &stubScorer{scores: map[string]float64{
		"A->B": 3.0,
		"A->C": 2.9,
		"A->D": 5.1,
	}}

	job := NewJob(lister, store, scorer, jobConfig(2))
	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecordsWritten != 1 {
		t.Fatalf("expected 1 record written, got %d", result.RecordsWritten)
	}
	if len(store.upserted) != 1 {
		t.Fatalf("expected exactly one bulk write, got %d", len(store.upserted))
	}

	got := recordIDs(store.upserted[0])
	want := []string{"D", "B"}
	if !reflect.DeepEqual(got["A"], want) {
		t.Fatalf("expected record for A = %v, got %v", want, got["A"])
	}
	// B, C, D score zero against everything: no records for them.
	if len(got) != 1 {
		t.Fatalf("expected no records for zero-candidate explorations, got %v", got)
	}
}

func TestJobRunTruncatesToMaxRecommendations(t *testing.T) {
	ids := make([]string, 0, 16)
	ids = append(ids, "ref")
	scores := map[string]float64{}
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("cand-%02d", i)
		ids = append(ids, id)
		scores["ref->"+id] = 3.0 + float64(i)
	}

	lister := &fakeLister{snapshot: summaries(ids...)}
	store := &fakeStore{}
	job := NewJob(lister, store, &stubScorer{scores: scores}, jobConfig(10))

	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := recordIDs(store.upserted[0])["ref"]
	if len(got) != 10 {
		t.Fatalf("expected 10 recommendations, got %d: %v", len(got), got)
	}
	if got[0] != "cand-14" || got[9] != "cand-05" {
		t.Fatalf("expected highest-scoring 10 in descending order, got %v", got)
	}
}

func TestJobRunNeverRecommendsSelf(t *testing.T) {
	lister := &fakeLister{snapshot: summaries("A", "B")}
	store := &fakeStore{}
	// Every pair qualifies; self pairs must still be excluded structurally.
	scorer := &stubScorer{scores: map[string]float64{
		"A->A": 99, "A->B": 99, "B->A": 99, "B->B": 99,
	}}

	job := NewJob(lister, store, scorer, jobConfig(10))
	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := recordIDs(store.upserted[0])
	for expID, recs := range got {
		for _, id := range recs {
			if id == expID {
				t.Fatalf("exploration %s recommends itself: %v", expID, recs)
			}
		}
	}
}

func TestJobRunEmptyCorpusIsQuietSuccess(t *testing.T) {
	lister := &fakeLister{}
	store := &fakeStore{pruneResult: 2}

	job := NewJob(lister, store, &stubScorer{}, jobConfig(10))
	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("empty corpus must not fail: %v", err)
	}
	if result.RecordsWritten != 0 {
		t.Fatalf("expected zero records written, got %d", result.RecordsWritten)
	}
	if len(store.upserted) != 0 {
		t.Fatalf("expected no bulk write for empty corpus")
	}
	// Pruning still runs: every stored record is stale now.
	if len(store.keptIDs) != 1 || len(store.keptIDs[0]) != 0 {
		t.Fatalf("expected prune with empty keep list, got %v", store.keptIDs)
	}
	if result.RecordsPruned != 2 {
		t.Fatalf("expected prune count 2, got %d", result.RecordsPruned)
	}
}

func TestJobRunScorerErrorAbortsBeforeWrite(t *testing.T) {
	lister := &fakeLister{snapshot: summaries("A", "B", "C")}
	store := &fakeStore{}

	job := NewJob(lister, store, &stubScorer{err: fmt.Errorf("scorer broke")}, jobConfig(10))
	if _, err := job.Run(context.Background()); err == nil {
		t.Fatal("expected scorer error to fail the run")
	}
	if len(store.upserted) != 0 || len(store.keptIDs) != 0 {
		t.Fatalf("failed run must not touch the store: upserts=%v prunes=%v", store.upserted, store.keptIDs)
	}
}

func TestJobRunIsIdempotentOnUnchangedSnapshot(t *testing.T) {
	lister := &fakeLister{snapshot: summaries("A", "B", "C")}
	store := &fakeStore{}
	scorer := &stubScorer{scores: map[string]float64{
		"A->B": 4.0, "A->C": 4.0,
		"B->A": 3.5,
	}}

	job := NewJob(lister, store, scorer, jobConfig(10))
	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	first := recordIDs(store.upserted[0])
	second := recordIDs(store.upserted[1])
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reruns must produce identical records: %v vs %v", first, second)
	}
	// Equal scores keep snapshot order on both runs.
	if !reflect.DeepEqual(first["A"], []string{"B", "C"}) {
		t.Fatalf("expected deterministic tie order [B C], got %v", first["A"])
	}
}

func TestJobRunPrunesRecordsNotReemitted(t *testing.T) {
	lister := &fakeLister{snapshot: summaries("A", "B")}
	store := &fakeStore{pruneResult: 3}
	scorer := &stubScorer{scores: map[string]float64{"A->B": 4.0}}

	job := NewJob(lister, store, scorer, jobConfig(10))
	result, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(store.keptIDs[0], []string{"A"}) {
		t.Fatalf("expected keep list [A], got %v", store.keptIDs[0])
	}
	if result.RecordsPruned != 3 {
		t.Fatalf("expected prune count 3, got %d", result.RecordsPruned)
	}
}

func TestJobRunPropagatesLoadError(t *testing.T) {
	lister := &fakeLister{err: fmt.Errorf("mongo down")}
	store := &fakeStore{}

	job := NewJob(lister, store, &stubScorer{}, jobConfig(10))
	if _, err := job.Run(context.Background()); err == nil {
		t.Fatal("expected load error to fail the run")
	}
	if len(store.upserted) != 0 || len(store.keptIDs) != 0 {
		t.Fatal("failed run must not touch the store")
	}
}
