package models

import "time"

// Ticket represents a validated Mega Millions ticket. Instances are only
// produced by the ticket service validator; a ticket that failed validation
// never reaches downstream code.
type Ticket struct {
	Numbers   []int     `json:"numbers"`   // 5 white ball numbers, sorted ascending
	Megaball  int       `json:"megaball"`  // bonus ball, separate pool
	Megaplier bool      `json:"megaplier"` // whether the multiplier option was purchased
	Draws     int       `json:"draws"`     // number of drawings the ticket covers
	Purchased time.Time `json:"purchased"` // eligibility start date (no time component)
}

// QuickPick represents a randomly generated playable combination.
type QuickPick struct {
	Numbers  []int `json:"numbers"`  // 5 distinct numbers in [1,69], sorted ascending
	Megaball int   `json:"megaball"` // 1 number in [1,25]
}
