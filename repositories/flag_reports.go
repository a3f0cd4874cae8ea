package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"learnscape/models"
)

type FlagReportRepository struct {
	col *mongo.Collection
}

func NewFlagReportRepository(db *mongo.Database) *FlagReportRepository {
	return &FlagReportRepository{col: db.Collection("flag_reports")}
}

// Insert stores one learner flag report. Reports are append-only.
func (r *FlagReportRepository) Insert(ctx context.Context, report *models.FlagReport) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, report)
	return err
}
