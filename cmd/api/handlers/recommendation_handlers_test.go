package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"learnscape/cmd/api/services"
	"learnscape/dto"
	"learnscape/models"
	"learnscape/repositories"
)

type stubRecommendationReader struct {
	rec *models.ExplorationRecommendations
}

func (s *stubRecommendationReader) FindByID(ctx context.Context, expID string) (*models.ExplorationRecommendations, error) {
	if s.rec == nil {
		return nil, mongo.ErrNoDocuments
	}
	return s.rec, nil
}

type stubSummaryReader struct{}

func (s *stubSummaryReader) FindByID(ctx context.Context, id string) (*models.ExplorationSummary, error) {
	return &models.ExplorationSummary{ID: id}, nil
}

func (s *stubSummaryReader) FindByIDs(ctx context.Context, ids []string) ([]models.ExplorationSummary, error) {
	out := make([]models.ExplorationSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.ExplorationSummary{ID: id})
	}
	return out, nil
}

func (s *stubSummaryReader) List(ctx context.Context, opt repositories.ListSummariesOptions) ([]models.ExplorationSummary, error) {
	return nil, nil
}

func newRecommendationsRouter(rec *models.ExplorationRecommendations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewRecommendationService(&stubRecommendationReader{rec: rec}, &stubSummaryReader{}, 4)
	r := gin.New()
	r.GET("/explorations/:id/recommendations", GetRecommendationsHandler(svc))
	return r
}

func TestGetRecommendationsHandlerRejectsMalformedAuthorIDs(t *testing.T) {
	r := newRecommendationsRouter(nil)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/explorations/exp-1/recommendations?stringified_author_recommended_ids=not-json", nil)
	r.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetRecommendationsHandlerReturnsAuthorAndSystemPicks(t *testing.T) {
	r := newRecommendationsRouter(&models.ExplorationRecommendations{
		ID:                        "exp-1",
		RecommendedExplorationIDs: []string{"sys-1"},
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/explorations/exp-1/recommendations?stringified_author_recommended_ids=%5B%22auth-1%22%5D", nil)
	r.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body dto.RecommendationsDTO
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}
	if len(body.Summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %v", body.Summaries)
	}
	if body.Summaries[0].ID != "auth-1" {
		t.Fatalf("expected author pick first, got %v", body.Summaries[0].ID)
	}
}

func TestGetRecommendationsHandlerCanDisableSystemPicks(t *testing.T) {
	r := newRecommendationsRouter(&models.ExplorationRecommendations{
		ID:                        "exp-1",
		RecommendedExplorationIDs: []string{"sys-1"},
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/explorations/exp-1/recommendations?include_system_recommendations=false", nil)
	r.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var body dto.RecommendationsDTO
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}
	if len(body.Summaries) != 0 {
		t.Fatalf("expected no summaries, got %v", body.Summaries)
	}
}
