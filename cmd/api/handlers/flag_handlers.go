package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnscape/cmd/api/services"
	"learnscape/dto"
)

// PostFlagHandler godoc
// @Summary      Flag an exploration for moderation
// @Tags         flags
// @Param        id  path  string  true  "Exploration ID"
// @Param        X-User-Id  header  string  true  "Learner ID"
// @Param        body  body  dto.SubmitFlagDTO  true  "Flag payload"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /explorations/{id}/flag [post]
func PostFlagHandler(svc *services.FlagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := userID(c)
		if uid == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: "user_id_required"})
			return
		}

		var body dto.SubmitFlagDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}

		if err := svc.Submit(c.Request.Context(), c.Param("id"), uid, body.ReportText); err != nil {
			if errors.Is(err, services.ErrEmptyReport) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "report_text_required"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_store_flag"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "flag report stored"})
	}
}

// PostRefreshHandler godoc
// @Summary      Request an out-of-schedule recommendation refresh
// @Tags         internal
// @Produce      json
// @Success      202  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /internal/recommendations/refresh [post]
func PostRefreshHandler(svc *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.PublishRecommendationsRefreshRequested(c.Request.Context(), userID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_request_refresh"})
			return
		}
		c.JSON(http.StatusAccepted, dto.MessageResponseDTO{Message: "refresh requested"})
	}
}
