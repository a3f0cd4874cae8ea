package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"learnscape/dto"
	"learnscape/models"
	"learnscape/repositories"
)

// ErrExplorationNotFound 는 요청한 탐험이 없거나 삭제된 경우의 공통 에러이다.
var ErrExplorationNotFound = errors.New("exploration not found")

// SummaryReader is the read surface of the summary repository the API needs.
type SummaryReader interface {
	FindByID(ctx context.Context, id string) (*models.ExplorationSummary, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.ExplorationSummary, error)
	List(ctx context.Context, opt repositories.ListSummariesOptions) ([]models.ExplorationSummary, error)
}

// ExplorationService encapsulates summary browsing and DTO mapping.
type ExplorationService struct {
	summaries SummaryReader
}

func NewExplorationService(summaries SummaryReader) *ExplorationService {
	return &ExplorationService{summaries: summaries}
}

// GetByID loads one summary and returns a DTO.
func (s *ExplorationService) GetByID(ctx context.Context, id string) (*dto.ExplorationSummaryDTO, error) {
	summary, err := s.summaries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrExplorationNotFound
		}
		return nil, err
	}
	d := dto.NewExplorationSummaryDTO(*summary)
	return &d, nil
}

type ListExplorationsInput struct {
	Page         int
	PageSize     int
	Category     string
	LanguageCode string
}

func (s *ExplorationService) List(ctx context.Context, in ListExplorationsInput) ([]dto.ExplorationSummaryDTO, error) {
	items, err := s.summaries.List(ctx, repositories.ListSummariesOptions{
		Page:         in.Page,
		PageSize:     in.PageSize,
		Category:     in.Category,
		LanguageCode: in.LanguageCode,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExplorationSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewExplorationSummaryDTO(item))
	}
	return out, nil
}
