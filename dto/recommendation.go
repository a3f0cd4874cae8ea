package dto

// RecommendationsDTO is the end-of-exploration recommendation response:
// the summaries of every exploration picked for the learner, author
// recommendations and system picks merged.
type RecommendationsDTO struct {
	Summaries []ExplorationSummaryDTO `json:"summaries"`
}
