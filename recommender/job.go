package recommender

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"learnscape/config"
	"learnscape/models"
)

// SummaryLister is the read contract the job consumes: a complete snapshot
// of all current, non-deleted exploration summaries.
type SummaryLister interface {
	GetAllNonDeleted(ctx context.Context) ([]models.ExplorationSummary, error)
}

// RecommendationStore is the write contract: bulk-upsert recommendation
// records by exploration id and prune the ones not re-emitted this run.
type RecommendationStore interface {
	BulkUpsert(ctx context.Context, recs []models.ExplorationRecommendations) (int, error)
	DeleteAllExcept(ctx context.Context, keepIDs []string) (int64, error)
}

// Result summarizes one job run. A run that writes zero records is a valid
// quiet success, not a failure.
type Result struct {
	RecordsWritten int
	RecordsPruned  int64
}

// Job recomputes the related-exploration recommendation list for every
// exploration in the corpus: load the snapshot, fan the comparator out over
// a worker pool with the snapshot as a shared read-only side input, group
// candidates per reference, rank and truncate, then bulk-write the records.
type Job struct {
	summaries          SummaryLister
	store              RecommendationStore
	comparator         *Comparator
	maxRecommendations int
	workers            int
}

func NewJob(summaries SummaryLister, store RecommendationStore, scorer Scorer, cfg config.RecommendationConfig) *Job {
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Job{
		summaries:          summaries,
		store:              store,
		comparator:         NewComparator(scorer, cfg.SimilarityThreshold),
		maxRecommendations: cfg.MaxRecommendations,
		workers:            workers,
	}
}

// Run executes one full recommendation pass. Any comparator error fails the
// run before anything is written, so a failed run leaves the store untouched.
// Rerunning on an unchanged snapshot produces identical records.
func (j *Job) Run(ctx context.Context) (Result, error) {
	snapshot, err := j.summaries.GetAllNonDeleted(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load exploration summaries: %w", err)
	}

	grouped, err := j.compareAll(ctx, snapshot)
	if err != nil {
		return Result{}, err
	}

	now := time.Now()
	records := make([]models.ExplorationRecommendations, 0, len(grouped))
	keepIDs := make([]string, 0, len(grouped))
	// Iterate the snapshot, not the map, so record order is deterministic.
	for _, ref := range snapshot {
		candidates := grouped[ref.ID]
		if len(candidates) == 0 {
			// Zero qualifying candidates: no record for this exploration.
			continue
		}
		records = append(records, models.ExplorationRecommendations{
			ID:                        ref.ID,
			CreatedAt:                 now,
			UpdatedAt:                 now,
			RecommendedExplorationIDs: sortAndSlice(candidates, j.maxRecommendations),
		})
		keepIDs = append(keepIDs, ref.ID)
	}

	var res Result
	if len(records) > 0 {
		written, err := j.store.BulkUpsert(ctx, records)
		if err != nil {
			return Result{}, fmt.Errorf("bulk upsert recommendations: %w", err)
		}
		res.RecordsWritten = written
	}

	pruned, err := j.store.DeleteAllExcept(ctx, keepIDs)
	if err != nil {
		return Result{}, fmt.Errorf("prune stale recommendations: %w", err)
	}
	res.RecordsPruned = pruned

	if res.RecordsWritten > 0 {
		config.Logger.Infof("recommendation job finished: SUCCESS %d", res.RecordsWritten)
	}
	return res, nil
}

// compareAll runs the comparator for every reference exploration on a worker
// pool. Draining the pool is the group barrier: ranking only starts once
// every reference's candidates have arrived.
func (j *Job) compareAll(ctx context.Context, snapshot []models.ExplorationSummary) (map[string][]ScoredCandidate, error) {
	type compared struct {
		refID      string
		candidates []ScoredCandidate
		err        error
	}

	refs := make(chan models.ExplorationSummary)
	results := make(chan compared, len(snapshot))

	var wg sync.WaitGroup
	wg.Add(j.workers)
	for w := 0; w < j.workers; w++ {
		go func() {
			defer wg.Done()
			for ref := range refs {
				candidates, err := j.comparator.Compare(ref, snapshot)
				results <- compared{refID: ref.ID, candidates: candidates, err: err}
			}
		}()
	}

	go func() {
		defer close(refs)
		for _, ref := range snapshot {
			select {
			case refs <- ref:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	grouped := make(map[string][]ScoredCandidate, len(snapshot))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		grouped[r.refID] = r.candidates
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grouped, nil
}
