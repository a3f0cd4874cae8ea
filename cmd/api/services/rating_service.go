package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"learnscape/dto"
	"learnscape/models"
)

// ErrInvalidRating 은 평점이 1~5 범위를 벗어난 경우의 에러이다.
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// RatingStore is the surface of the rating repository the API needs.
type RatingStore interface {
	UpsertByExplorationAndUser(ctx context.Context, rating *models.ExplorationRating) (*mongo.UpdateResult, error)
	FindUserRating(ctx context.Context, expID, userID string) (*models.ExplorationRating, error)
	OverallRatings(ctx context.Context, expID string) (map[string]int, error)
}

// RatingService records and reads end-of-exploration ratings.
type RatingService struct {
	ratings RatingStore
}

func NewRatingService(ratings RatingStore) *RatingService {
	return &RatingService{ratings: ratings}
}

// Get returns the rating distribution plus the requesting learner's own
// rating. userID may be empty (anonymous learner); UserRating is nil then.
func (s *RatingService) Get(ctx context.Context, expID, userID string) (dto.RatingDTO, error) {
	overall, err := s.ratings.OverallRatings(ctx, expID)
	if err != nil {
		return dto.RatingDTO{}, err
	}

	out := dto.RatingDTO{OverallRatings: overall}
	if userID != "" {
		rating, err := s.ratings.FindUserRating(ctx, expID, userID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return dto.RatingDTO{}, err
		}
		if rating != nil {
			out.UserRating = &rating.Rating
		}
	}
	return out, nil
}

// Assign upserts one learner's rating of an exploration.
func (s *RatingService) Assign(ctx context.Context, expID, userID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	_, err := s.ratings.UpsertByExplorationAndUser(ctx, &models.ExplorationRating{
		ExplorationID: expID,
		UserID:        userID,
		Rating:        rating,
	})
	return err
}
