package models

import (
	"time"
)

// ExplorationRecommendations holds the precomputed related-exploration list
// for one exploration. At most one document per exploration; the batch job
// recomputes and replaces the whole document on every run.
// Collection: exploration_recommendations
type ExplorationRecommendations struct {
	// ID is the exploration id the recommendations belong to.
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	// RecommendedExplorationIDs is ordered by descending similarity score
	// as computed at write time.
	RecommendedExplorationIDs []string `bson:"recommended_exploration_ids" json:"recommended_exploration_ids"`
}
