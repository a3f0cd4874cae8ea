package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlagReport is a learner's report that an exploration may be
// inappropriate. Reports are append-only; moderation consumes them
// through the moderation event topic.
// Collection: flag_reports
type FlagReport struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	ExplorationID string             `bson:"exploration_id" json:"exploration_id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	ReportText    string             `bson:"report_text" json:"report_text"`
}
