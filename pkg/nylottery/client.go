// Package nylottery provides a client for the New York State open data
// (Socrata) Mega Millions winning numbers dataset.
package nylottery

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"yellowball/internal/models"
)

// DefaultBaseURL is the public Mega Millions dataset endpoint
const DefaultBaseURL = "https://data.ny.gov/resource/5xaw-6ayf.json"

// drawDateLayout is the Socrata floating timestamp format
const drawDateLayout = "2006-01-02T15:04:05.000"

// Client represents a Mega Millions results API client
type Client struct {
	BaseURL string
	Mock    bool
	client  *http.Client
}

// drawRow mirrors one row of the dataset. Socrata serves every column as a
// string.
type drawRow struct {
	DrawDate       string `json:"draw_date"`
	WinningNumbers string `json:"winning_numbers"`
	MegaBall       string `json:"mega_ball"`
	Multiplier     string `json:"multiplier"`
}

// NewClient creates a new results client. When mock is true, results are
// generated locally instead of fetched from the dataset.
func NewClient(baseURL string, mock bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Mock:    mock,
		client:  &http.Client{},
	}
}

// GetResults retrieves the published drawings with dates in [startDate,
// endDate], sorted chronologically. A single GET is issued; any failure is
// returned to the caller without retry.
func (c *Client) GetResults(startDate, endDate time.Time) ([]models.DrawResult, error) {
	if c.Mock {
		return c.mockGetResults(startDate, endDate)
	}

	query := url.Values{}
	query.Set("$where", fmt.Sprintf(
		"draw_date between '%s' and '%s'",
		startDate.Format(drawDateLayout),
		endDate.Format(drawDateLayout),
	))
	requrl := c.BaseURL + "?" + query.Encode()

	resp, err := c.client.Get(requrl)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve results: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read results response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("results API returned status %d", resp.StatusCode)
	}

	var rows []drawRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse results response: %w", err)
	}

	results := make([]models.DrawResult, 0, len(rows))
	for _, row := range rows {
		result, ok := parseRow(row)
		if !ok {
			// rows with missing or malformed columns are skipped
			continue
		}
		if result.Date.Before(startDate) {
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})

	return results, nil
}

// parseRow converts one dataset row into a DrawResult
func parseRow(row drawRow) (models.DrawResult, bool) {
	if row.DrawDate == "" || row.WinningNumbers == "" || row.Multiplier == "" {
		return models.DrawResult{}, false
	}

	date, err := time.Parse(drawDateLayout, row.DrawDate)
	if err != nil {
		return models.DrawResult{}, false
	}

	fields := strings.Fields(row.WinningNumbers)
	if len(fields) != 5 {
		return models.DrawResult{}, false
	}
	balls := make([]int, 5)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return models.DrawResult{}, false
		}
		balls[i] = n
	}

	megaball, err := strconv.Atoi(row.MegaBall)
	if err != nil {
		return models.DrawResult{}, false
	}
	multiplier, err := strconv.Atoi(row.Multiplier)
	if err != nil {
		return models.DrawResult{}, false
	}

	return models.DrawResult{
		Date:       date,
		Balls:      balls,
		Megaball:   megaball,
		Multiplier: multiplier,
	}, true
}

// mockGetResults generates drawings locally for the Tuesday and Friday draw
// dates within the range, for offline use and testing
func (c *Client) mockGetResults(startDate, endDate time.Time) ([]models.DrawResult, error) {
	multipliers := []int{2, 3, 4, 5}
	var results []models.DrawResult

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Tuesday && d.Weekday() != time.Friday {
			continue
		}

		picked := make(map[int]bool)
		balls := make([]int, 0, 5)
		for len(balls) < 5 {
			n := rand.Intn(69) + 1
			if !picked[n] {
				picked[n] = true
				balls = append(balls, n)
			}
		}
		sort.Ints(balls)

		results = append(results, models.DrawResult{
			Date:       d,
			Balls:      balls,
			Megaball:   rand.Intn(25) + 1,
			Multiplier: multipliers[rand.Intn(len(multipliers))],
		})
	}

	return results, nil
}
