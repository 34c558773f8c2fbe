package services

import (
	"context"
	"time"

	"yellowball/internal/models"
)

// ResultsService defines the interface for retrieving published drawing
// results
type ResultsService interface {
	// GetResults retrieves the drawings with dates in [startDate, endDate],
	// sorted chronologically
	GetResults(ctx context.Context, startDate, endDate time.Time) ([]models.DrawResult, error)
}

// CheckerService defines the interface for checking a ticket against the
// drawings it covers
type CheckerService interface {
	// Check evaluates every covered drawing and returns the accumulated report
	Check(ctx context.Context, ticket *models.Ticket) (*models.Report, error)
}
