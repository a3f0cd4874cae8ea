package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnscape/cmd/api/services"
	"learnscape/dto"
)

// userID 는 요청 헤더에서 학습자 식별자를 꺼낸다. 비로그인 학습자는 빈 문자열이다.
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-Id")
}

// GetRatingHandler godoc
// @Summary      Rating distribution for an exploration
// @Tags         ratings
// @Param        id  path  string  true  "Exploration ID"
// @Param        X-User-Id  header  string  false  "Learner ID"
// @Produce      json
// @Success      200  {object}  dto.RatingDTO
// @Router       /explorations/{id}/rating [get]
func GetRatingHandler(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rating, err := svc.Get(c.Request.Context(), c.Param("id"), userID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_ratings"})
			return
		}
		c.JSON(http.StatusOK, rating)
	}
}

// PutRatingHandler godoc
// @Summary      Assign a learner's rating to an exploration
// @Tags         ratings
// @Param        id  path  string  true  "Exploration ID"
// @Param        X-User-Id  header  string  true  "Learner ID"
// @Param        body  body  dto.SubmitRatingDTO  true  "Rating payload"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /explorations/{id}/rating [put]
func PutRatingHandler(svc *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := userID(c)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "user_id_required"})
			return
		}

		var body dto.SubmitRatingDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Assign(c.Request.Context(), c.Param("id"), uid, body.UserRating); err != nil {
			if errors.Is(err, services.ErrInvalidRating) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "rating_out_of_range"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_store_rating"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "rating stored"})
	}
}
