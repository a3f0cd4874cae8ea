package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnscape/models"
)

type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	return &RecommendationRepository{col: db.Collection("exploration_recommendations")}
}

// BulkUpsert replaces the recommendation documents keyed by exploration id
// in a single unordered bulk write. Existing lists are overwritten wholesale;
// there is no merge. Returns the number of records written.
func (r *RecommendationRepository) BulkUpsert(ctx context.Context, recs []models.ExplorationRecommendations) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	now := time.Now()
	ops := make([]mongo.WriteModel, 0, len(recs))
	for i := range recs {
		rec := recs[i]
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		rec.UpdatedAt = now
		ops = append(ops, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": rec.ID}).
			SetReplacement(rec).
			SetUpsert(true))
	}

	res, err := r.col.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return int(res.UpsertedCount + res.MatchedCount), nil
}

// DeleteAllExcept removes every recommendation document whose id is not in
// keepIDs. The batch job calls this after a run so explorations that dropped
// to zero qualifying candidates do not keep a stale list.
func (r *RecommendationRepository) DeleteAllExcept(ctx context.Context, keepIDs []string) (int64, error) {
	filter := bson.M{"_id": bson.M{"$nin": keepIDs}}
	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindByID returns the stored recommendation list for one exploration.
func (r *RecommendationRepository) FindByID(ctx context.Context, expID string) (*models.ExplorationRecommendations, error) {
	var rec models.ExplorationRecommendations
	if err := r.col.FindOne(ctx, bson.M{"_id": expID}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
