package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"learnscape/models"
)

// ErrEmptyReport 는 신고 본문이 비어 있는 경우의 에러이다.
var ErrEmptyReport = errors.New("report text must not be empty")

// FlagStore is the surface of the flag report repository the API needs.
type FlagStore interface {
	Insert(ctx context.Context, report *models.FlagReport) error
}

// FlagService stores learner flag reports and notifies moderation through
// the event bus.
type FlagService struct {
	reports FlagStore
	events  *EventService
}

func NewFlagService(reports FlagStore, events *EventService) *FlagService {
	return &FlagService{reports: reports, events: events}
}

// Submit records one flag report and publishes an exploration.flagged event
// for the moderation service.
func (s *FlagService) Submit(ctx context.Context, expID, userID, reportText string) error {
	if strings.TrimSpace(reportText) == "" {
		return ErrEmptyReport
	}

	report := &models.FlagReport{
		ExplorationID: expID,
		UserID:        userID,
		ReportText:    reportText,
	}
	if err := s.reports.Insert(ctx, report); err != nil {
		return fmt.Errorf("insert flag report: %w", err)
	}

	if err := s.events.PublishExplorationFlagged(ctx, report); err != nil {
		return fmt.Errorf("publish exploration flagged event: %w", err)
	}
	return nil
}
