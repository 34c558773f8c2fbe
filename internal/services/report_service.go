package services

import (
	"fmt"
	"strings"

	"yellowball/internal/models"
	"yellowball/internal/utils"
)

// winningsThreshold separates the highlighted summary tier from ordinary
// winnings
const winningsThreshold = 999

// MailSubject is the subject line used when a report is delivered by mail
const MailSubject = "Mega Millions Results"

// Style holds the escape codes used for report emphasis. Formatting is an
// explicit value handed to the renderer, never global state.
type Style struct {
	Red    string
	Yellow string
	Bold   string
	Reset  string
}

// NewStyle returns the ANSI style, or an empty style when color is disabled
func NewStyle(noColor bool) Style {
	if noColor {
		return Style{}
	}
	return Style{
		Red:    "\033[31m",
		Yellow: "\033[33m",
		Bold:   "\033[1m",
		Reset:  "\033[0m",
	}
}

// ReportService renders check reports to text
type ReportService struct {
	style       Style
	winnersOnly bool
}

// NewReportService creates a new ReportService. When winnersOnly is set,
// non-winning drawing lines are suppressed.
func NewReportService(style Style, winnersOnly bool) *ReportService {
	return &ReportService{
		style:       style,
		winnersOnly: winnersOnly,
	}
}

// Render produces the full text report: ticket header, one line per drawing
// and the total value line.
func (s *ReportService) Render(report *models.Report) string {
	var b strings.Builder

	s.writeHeader(&b, report)

	b.WriteString("Results:\n")
	for _, outcome := range report.Outcomes {
		s.writeOutcome(&b, outcome, report.Ticket.Megaplier)
	}
	if len(report.Outcomes) == 0 {
		b.WriteString("No results yet.\n")
	}

	s.writeTotal(&b, report)

	return b.String()
}

// writeHeader writes the ticket metadata block
func (s *ReportService) writeHeader(b *strings.Builder, report *models.Report) {
	ticket := report.Ticket
	megaplier := "No"
	if ticket.Megaplier {
		megaplier = "Yes"
	}
	fmt.Fprintf(b,
		"\nTicket info\n"+
			"===========\n"+
			"Purchased: %s\n"+
			"Draws: %d\n"+
			"Remaining: %d\n"+
			"Numbers: %s [%s]\n"+
			"Megaplier: %s\n\n",
		ticket.Purchased.Format("2006-01-02"),
		ticket.Draws,
		report.Remaining,
		utils.FormatBalls(ticket.Numbers, ", "),
		utils.FormatBall(ticket.Megaball),
		megaplier,
	)
}

// writeOutcome writes one drawing line
func (s *ReportService) writeOutcome(b *strings.Builder, outcome models.DrawOutcome, megaplier bool) {
	if s.winnersOnly && outcome.Kind == models.OutcomeLoser {
		return
	}

	drawing := fmt.Sprintf("%s (%s [%s%s%s])",
		outcome.Date.Format("2006-01-02"),
		utils.FormatBalls(outcome.Balls, ","),
		s.style.Yellow,
		utils.FormatBall(outcome.Megaball),
		s.style.Reset,
	)

	var result string
	switch outcome.Kind {
	case models.OutcomeJackpot:
		// the jackpot line carries the drawing date a second time
		result = fmt.Sprintf("%s%s%s You won! [matched 5 numbers + megaball = JACKPOT!]%s",
			s.style.Bold, s.style.Red, outcome.Date.Format("2006-01-02"), s.style.Reset)
	case models.OutcomeLoser:
		result = "The ticket was not a winner."
	default:
		mbString := ""
		if outcome.MegaballMatched {
			mbString = " + megaball"
		}
		mmString := ""
		if megaplier {
			mmString = fmt.Sprintf(" (x%d megaplier)", outcome.Multiplier)
		}
		textColor := s.style.Yellow
		if outcome.Amount > winningsThreshold {
			textColor = s.style.Red
		}
		result = fmt.Sprintf("%s%sYou won! [matched %d numbers%s%s = $%d]%s",
			s.style.Bold, textColor, outcome.Matched, mbString, mmString, outcome.Amount, s.style.Reset)
	}

	fmt.Fprintf(b, "%s - %s\n", drawing, result)
}

// writeTotal writes the summary line with its emphasis tier: jackpot with
// extra winnings, jackpot alone, total above the threshold, total above zero,
// or zero
func (s *ReportService) writeTotal(b *strings.Builder, report *models.Report) {
	var tvString, textBold, textColor string
	switch {
	case report.Jackpot && report.TotalValue > 0:
		tvString = fmt.Sprintf("JACKPOT! (+$%d)", report.TotalValue)
		textBold = s.style.Bold
		textColor = s.style.Red
	case report.Jackpot:
		tvString = "JACKPOT!"
		textBold = s.style.Bold
		textColor = s.style.Red
	case report.TotalValue > winningsThreshold:
		tvString = fmt.Sprintf("$%d", report.TotalValue)
		textBold = s.style.Bold
		textColor = s.style.Red
	case report.TotalValue > 0:
		tvString = fmt.Sprintf("$%d", report.TotalValue)
		textBold = s.style.Bold
		textColor = s.style.Yellow
	default:
		tvString = "$0"
	}

	fmt.Fprintf(b, "\n%s%sTotal ticket value: %s%s\n", textBold, textColor, tvString, s.style.Reset)
}

// RenderQuickPick formats a quick pick combination
func RenderQuickPick(pick models.QuickPick) string {
	return fmt.Sprintf(
		"\nQuick pick:\n"+
			"===========\n"+
			"Numbers:   %s\n"+
			"Megaball: %s\n\n",
		utils.FormatBalls(pick.Numbers, ", "),
		utils.FormatBall(pick.Megaball),
	)
}
