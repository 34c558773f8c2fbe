package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"yellowball/internal/models"
	"yellowball/pkg/nylottery"
)

// Compile-time check to ensure ResultsServiceImpl implements ResultsService
var _ ResultsService = (*ResultsServiceImpl)(nil)

// ResultsServiceImpl retrieves drawing results from the published dataset
type ResultsServiceImpl struct {
	client *nylottery.Client
}

// NewResultsService creates a new ResultsServiceImpl
func NewResultsService(client *nylottery.Client) *ResultsServiceImpl {
	return &ResultsServiceImpl{
		client: client,
	}
}

// GetResults retrieves the drawings with dates in [startDate, endDate]
func (s *ResultsServiceImpl) GetResults(ctx context.Context, startDate, endDate time.Time) ([]models.DrawResult, error) {
	results, err := s.client.GetResults(startDate, endDate)
	if err != nil {
		slog.Error("Failed to retrieve drawing results", "error", err, "start", startDate, "end", endDate)
		return nil, fmt.Errorf("could not retrieve results: %w", err)
	}
	return results, nil
}
