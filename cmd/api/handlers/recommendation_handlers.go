package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"learnscape/cmd/api/services"
	"learnscape/dto"
)

// GetRecommendationsHandler godoc
// @Summary      Recommendations after finishing an exploration
// @Description  Returns the author-recommended explorations merged with a
// @Description  bounded random sample of the batch-computed system picks.
// @Tags         recommendations
// @Param        id                              path   string  true   "Exploration ID"
// @Param        stringified_author_recommended_ids  query  string  false  "JSON array of author-recommended exploration ids"
// @Param        include_system_recommendations  query  bool    false  "Include system picks (default true)"
// @Produce      json
// @Success      200  {object}  dto.RecommendationsDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /explorations/{id}/recommendations [get]
func GetRecommendationsHandler(svc *services.RecommendationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		expID := c.Param("id")

		var authorIDs []string
		if raw := c.Query("stringified_author_recommended_ids"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &authorIDs); err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_author_recommended_ids"})
				return
			}
		}

		includeSystem := true
		if raw := c.Query("include_system_recommendations"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_include_system_recommendations"})
				return
			}
			includeSystem = parsed
		}

		result, err := svc.ForExploration(c.Request.Context(), expID, authorIDs, includeSystem)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_recommendations"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
