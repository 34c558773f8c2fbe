package models

import "time"

// OutcomeKind classifies the result of checking a ticket against one drawing
type OutcomeKind string

const (
	OutcomeJackpot OutcomeKind = "JACKPOT"
	OutcomeWinner  OutcomeKind = "WINNER"
	OutcomeLoser   OutcomeKind = "LOSER"
)

// DrawOutcome holds the result of checking a ticket against a single drawing
type DrawOutcome struct {
	Date            time.Time   `json:"date"`
	Balls           []int       `json:"balls"`
	Megaball        int         `json:"megaball"`
	Multiplier      int         `json:"multiplier"`
	Matched         int         `json:"matched"`
	MegaballMatched bool        `json:"megaballMatched"`
	Kind            OutcomeKind `json:"kind"`
	Amount          int         `json:"amount"` // zero for jackpot and loser outcomes
}

// Report is the full result of checking a ticket against the drawings it
// covers. The jackpot, when hit, is a separate category: it never contributes
// to TotalValue.
type Report struct {
	Ticket     *Ticket       `json:"ticket"`
	Remaining  int           `json:"remaining"` // draws not yet held
	Outcomes   []DrawOutcome `json:"outcomes"`
	TotalValue int           `json:"totalValue"`
	Jackpot    bool          `json:"jackpot"`
}
