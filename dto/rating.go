package dto

// RatingDTO carries the rating distribution of an exploration plus the
// requesting learner's own rating, nil when the learner has not rated it
// (or is anonymous).
type RatingDTO struct {
	OverallRatings map[string]int `json:"overall_ratings"`
	UserRating     *int           `json:"user_rating"`
}

// SubmitRatingDTO is the PUT rating request body.
type SubmitRatingDTO struct {
	UserRating int `json:"user_rating" binding:"required"`
}

// SubmitFlagDTO is the POST flag request body.
type SubmitFlagDTO struct {
	ReportText string `json:"report_text" binding:"required"`
}
