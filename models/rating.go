package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExplorationRating records one learner's rating of one exploration,
// submitted on completion. Unique per (exploration_id, user_id); a
// resubmission overwrites the previous value.
// Collection: exploration_ratings
type ExplorationRating struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
	ExplorationID string             `bson:"exploration_id" json:"exploration_id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	// Rating is 1..5.
	Rating int `bson:"rating" json:"rating"`
}
