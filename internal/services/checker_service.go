package services

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"yellowball/internal/models"
	"yellowball/internal/utils"
)

// Compile-time check to ensure CheckerServiceImpl implements CheckerService
var _ CheckerService = (*CheckerServiceImpl)(nil)

// CheckerServiceImpl checks a ticket against the drawings it covers
type CheckerServiceImpl struct {
	resultsService ResultsService
	lastOnly       bool
	now            func() time.Time
}

// NewCheckerService creates a new CheckerServiceImpl. When lastOnly is set,
// only the most recent covered drawing is evaluated.
func NewCheckerService(resultsService ResultsService, lastOnly bool) *CheckerServiceImpl {
	return &CheckerServiceImpl{
		resultsService: resultsService,
		lastOnly:       lastOnly,
		now:            time.Now,
	}
}

// Check retrieves the drawings the ticket covers, evaluates each one and
// accumulates the total. Fewer results than requested draws is legitimate:
// those drawings have not been held yet.
func (s *CheckerServiceImpl) Check(ctx context.Context, ticket *models.Ticket) (*models.Report, error) {
	results, err := s.resultsService.GetResults(ctx, ticket.Purchased, s.now())
	if err != nil {
		return nil, err
	}

	// the ticket covers the chronologically first Draws results at or after
	// the purchase date
	if len(results) > ticket.Draws {
		results = results[:ticket.Draws]
	}

	report := &models.Report{
		Ticket:    ticket,
		Remaining: ticket.Draws - len(results),
	}

	if s.lastOnly && len(results) > 1 {
		results = results[len(results)-1:]
	}

	for _, result := range results {
		outcome := s.evaluate(ticket, result)
		if outcome.Kind == models.OutcomeJackpot {
			report.Jackpot = true
		} else {
			// the jackpot is a separate category and contributes no amount
			report.TotalValue += outcome.Amount
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	slog.Info("Ticket checked",
		"draws", ticket.Draws,
		"evaluated", len(results),
		"remaining", report.Remaining,
		"total", report.TotalValue,
		"jackpot", report.Jackpot)

	return report, nil
}

// evaluate checks the ticket against a single drawing
func (s *CheckerServiceImpl) evaluate(ticket *models.Ticket, result models.DrawResult) models.DrawOutcome {
	drawn := make(map[int]bool, len(result.Balls))
	for _, ball := range result.Balls {
		drawn[ball] = true
	}

	// duplicate ticket numbers are counted as played, without deduplication
	matched := 0
	for _, number := range ticket.Numbers {
		if drawn[number] {
			matched++
		}
	}
	megaballMatched := ticket.Megaball == result.Megaball

	outcome := models.DrawOutcome{
		Date:            result.Date,
		Balls:           result.Balls,
		Megaball:        result.Megaball,
		Multiplier:      result.Multiplier,
		Matched:         matched,
		MegaballMatched: megaballMatched,
	}

	switch {
	case matched == 5 && megaballMatched:
		outcome.Kind = models.OutcomeJackpot
	case matched < 3 && !megaballMatched:
		outcome.Kind = models.OutcomeLoser
	default:
		megaplier := 1
		if ticket.Megaplier {
			megaplier = result.Multiplier
		}
		outcome.Amount = utils.CalcWinnings(matched, megaballMatched, megaplier)
		outcome.Kind = models.OutcomeWinner
	}

	return outcome
}
