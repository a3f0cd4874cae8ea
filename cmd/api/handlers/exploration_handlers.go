package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"learnscape/cmd/api/services"
	"learnscape/dto"
)

// ListExplorationsHandler godoc
// @Summary      List exploration summaries
// @Description  List browsable exploration summaries with filters and pagination
// @Tags         explorations
// @Param        page           query  int     false  "Page number (1-based)"
// @Param        page_size      query  int     false  "Page size (<=100)"
// @Param        category       query  string  false  "Category (exact match)"
// @Param        language_code  query  string  false  "Language code (exact match)"
// @Produce      json
// @Success      200  {array}  dto.ExplorationSummaryDTO
// @Router       /explorations [get]
func ListExplorationsHandler(svc *services.ExplorationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListExplorationsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.Category = c.Query("category")
		in.LanguageCode = c.Query("language_code")

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_list_explorations"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetExplorationHandler godoc
// @Summary      Get exploration summary by id
// @Tags         explorations
// @Param        id   path   string  true  "Exploration ID"
// @Produce      json
// @Success      200  {object}  dto.ExplorationSummaryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /explorations/{id} [get]
func GetExplorationHandler(svc *services.ExplorationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrExplorationNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "exploration_not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_exploration"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
