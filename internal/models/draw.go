package models

import "time"

// DrawResult represents one officially published drawing. Results are fetched
// fresh on every invocation and never persisted.
type DrawResult struct {
	Date       time.Time `json:"date"`       // drawing date, unique within a result set
	Balls      []int     `json:"balls"`      // exactly 5 distinct numbers in [1,69]
	Megaball   int       `json:"megaball"`   // bonus ball in [1,25]
	Multiplier int       `json:"multiplier"` // megaplier value in effect for this drawing
}
