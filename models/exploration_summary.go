package models

import (
	"time"
)

// ExplorationSummary is the lightweight descriptive record of one
// exploration, denormalized by the content service for browsing and for
// the recommendation batch job. This backend only ever reads it.
// Collection: exploration_summaries
type ExplorationSummary struct {
	// ID is the exploration id assigned by the content service.
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	Title        string `bson:"title" json:"title"`
	Category     string `bson:"category" json:"category"`
	Objective    string `bson:"objective" json:"objective"`
	LanguageCode string `bson:"language_code" json:"language_code"`

	Tags []string `bson:"tags" json:"tags"`

	// Ratings maps the rating value ("1".."5") to the number of learners
	// who assigned it.
	Ratings             map[string]int `bson:"ratings" json:"ratings"`
	ScaledAverageRating float64        `bson:"scaled_average_rating" json:"scaled_average_rating"`

	Status  string `bson:"status" json:"status"`
	Deleted bool   `bson:"deleted" json:"deleted"`

	// ContentCreatedAt/ContentUpdatedAt are the timestamps of the underlying
	// exploration content, distinct from this summary document's own ones.
	ContentCreatedAt time.Time `bson:"content_created_at" json:"content_created_at"`
	ContentUpdatedAt time.Time `bson:"content_updated_at" json:"content_updated_at"`
}
