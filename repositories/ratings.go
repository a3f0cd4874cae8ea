package repositories

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnscape/models"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection("exploration_ratings")}
}

// UpsertByExplorationAndUser upserts a rating uniquely identified by
// (exploration_id, user_id). A resubmission replaces the old value.
func (r *RatingRepository) UpsertByExplorationAndUser(ctx context.Context, rating *models.ExplorationRating) (*mongo.UpdateResult, error) {
	now := time.Now()
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = now
	}
	rating.UpdatedAt = now

	filter := bson.M{"exploration_id": rating.ExplorationID, "user_id": rating.UserID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": rating.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":     rating.UpdatedAt,
			"exploration_id": rating.ExplorationID,
			"user_id":        rating.UserID,
			"rating":         rating.Rating,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// FindUserRating returns one learner's rating of an exploration,
// mongo.ErrNoDocuments when the learner has not rated it.
func (r *RatingRepository) FindUserRating(ctx context.Context, expID, userID string) (*models.ExplorationRating, error) {
	var rating models.ExplorationRating
	if err := r.col.FindOne(ctx, bson.M{"exploration_id": expID, "user_id": userID}).Decode(&rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// OverallRatings returns the rating distribution for an exploration as a
// map of rating value ("1".."5") to count. Values with no ratings are zero.
func (r *RatingRepository) OverallRatings(ctx context.Context, expID string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"exploration_id": expID}}},
		{{Key: "$group", Value: bson.M{"_id": "$rating", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for cur.Next(ctx) {
		var row struct {
			Rating int `bson:"_id"`
			Count  int `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[strconv.Itoa(row.Rating)] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
