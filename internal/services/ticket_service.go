package services

import (
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"yellowball/internal/models"
)

// ErrInvalidTicket is returned when any ticket field fails validation. The
// caller aborts; no partially valid ticket is ever produced.
var ErrInvalidTicket = errors.New("invalid ticket")

// purchasedLayout is the expected purchase date format
const purchasedLayout = "2006-01-02"

// TicketService handles ticket validation and quick pick generation
type TicketService struct{}

// NewTicketService creates a new TicketService
func NewTicketService() *TicketService {
	return &TicketService{}
}

// Validate normalizes and range-checks raw ticket fields into a canonical
// ticket. numbersCSV holds the comma-separated white ball numbers; megaball,
// draws and purchased arrive as unparsed strings. Any single field failure
// invalidates the whole ticket.
func (s *TicketService) Validate(numbersCSV, megaball, draws, purchased string, megaplier bool) (*models.Ticket, error) {
	// white ball numbers: each token must parse as an integer below 70 and
	// exactly 5 must do so. Duplicates are accepted as played.
	if numbersCSV == "" {
		return nil, ErrInvalidTicket
	}
	var numbers []int
	for _, token := range strings.Split(numbersCSV, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		if n < 70 {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) != 5 {
		slog.Warn("Ticket rejected: white ball numbers invalid", "numbers", numbersCSV)
		return nil, ErrInvalidTicket
	}
	sort.Ints(numbers)

	// megaball
	mball, err := strconv.Atoi(strings.TrimSpace(megaball))
	if err != nil || mball >= 26 {
		slog.Warn("Ticket rejected: megaball invalid", "megaball", megaball)
		return nil, ErrInvalidTicket
	}

	// draws defaults to 1 when unspecified
	numDraws := 1
	if draws != "" {
		numDraws, err = strconv.Atoi(strings.TrimSpace(draws))
		if err != nil || numDraws < 1 {
			slog.Warn("Ticket rejected: draws invalid", "draws", draws)
			return nil, ErrInvalidTicket
		}
	}

	// purchase date
	purchasedDate, err := time.Parse(purchasedLayout, strings.TrimSpace(purchased))
	if err != nil {
		slog.Warn("Ticket rejected: purchase date invalid", "purchased", purchased)
		return nil, ErrInvalidTicket
	}

	return &models.Ticket{
		Numbers:   numbers,
		Megaball:  mball,
		Megaplier: megaplier,
		Draws:     numDraws,
		Purchased: purchasedDate,
	}, nil
}

// QuickPick generates a random playable combination: 5 distinct numbers in
// [1,69] sorted ascending and a megaball in [1,25]. Not reproducible.
func (s *TicketService) QuickPick() models.QuickPick {
	picked := make(map[int]bool)
	numbers := make([]int, 0, 5)
	for len(numbers) < 5 {
		n := rand.Intn(69) + 1
		if !picked[n] {
			picked[n] = true
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	return models.QuickPick{
		Numbers:  numbers,
		Megaball: rand.Intn(25) + 1,
	}
}
