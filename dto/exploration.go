package dto

import (
	"time"

	"learnscape/models"
)

// ExplorationSummaryDTO exposes the browsable fields of a summary.
// Internal bookkeeping (deleted flag, document timestamps) is hidden.
type ExplorationSummaryDTO struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Category            string         `json:"category"`
	Objective           string         `json:"objective"`
	LanguageCode        string         `json:"language_code"`
	Tags                []string       `json:"tags"`
	Ratings             map[string]int `json:"ratings"`
	ScaledAverageRating float64        `json:"scaled_average_rating"`
	Status              string         `json:"status"`
	ContentUpdatedAt    time.Time      `json:"content_updated_at"`
}

// NewExplorationSummaryDTO constructs ExplorationSummaryDTO from the model
func NewExplorationSummaryDTO(s models.ExplorationSummary) ExplorationSummaryDTO {
	return ExplorationSummaryDTO{
		ID:                  s.ID,
		Title:               s.Title,
		Category:            s.Category,
		Objective:           s.Objective,
		LanguageCode:        s.LanguageCode,
		Tags:                s.Tags,
		Ratings:             s.Ratings,
		ScaledAverageRating: s.ScaledAverageRating,
		Status:              s.Status,
		ContentUpdatedAt:    s.ContentUpdatedAt,
	}
}
