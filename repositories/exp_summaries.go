package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnscape/models"
)

type ExpSummaryRepository struct {
	col *mongo.Collection
}

func NewExpSummaryRepository(db *mongo.Database) *ExpSummaryRepository {
	return &ExpSummaryRepository{col: db.Collection("exploration_summaries")}
}

// GetAllNonDeleted returns the complete snapshot of current summaries.
// The recommendation job consumes this once per run as its broadcast input.
func (r *ExpSummaryRepository) GetAllNonDeleted(ctx context.Context) ([]models.ExplorationSummary, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted": false}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ExplorationSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID returns one summary by exploration id.
func (r *ExpSummaryRepository) FindByID(ctx context.Context, id string) (*models.ExplorationSummary, error) {
	var s models.ExplorationSummary
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByIDs returns the summaries matching the given ids, input order is not
// preserved. Deleted explorations are silently omitted.
func (r *ExpSummaryRepository) FindByIDs(ctx context.Context, ids []string) ([]models.ExplorationSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "deleted": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ExplorationSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListSummariesOptions struct {
	Page         int
	PageSize     int
	Category     string
	LanguageCode string
}

// List returns a page of non-deleted summaries for browsing.
func (r *ExpSummaryRepository) List(ctx context.Context, opt ListSummariesOptions) ([]models.ExplorationSummary, error) {
	if opt.Page < 1 {
		opt.Page = 1
	}
	if opt.PageSize < 1 || opt.PageSize > 100 {
		opt.PageSize = 20
	}

	filter := bson.M{"deleted": false}
	if opt.Category != "" {
		filter["category"] = opt.Category
	}
	if opt.LanguageCode != "" {
		filter["language_code"] = opt.LanguageCode
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "content_updated_at", Value: -1}}).
		SetSkip(int64((opt.Page - 1) * opt.PageSize)).
		SetLimit(int64(opt.PageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ExplorationSummary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
