package nylottery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("$where"), "draw_date between")
		w.Header().Set("Content-Type", "application/json")
		// out of chronological order on purpose
		w.Write([]byte(`[
			{"draw_date":"2023-01-06T00:00:00.000","winning_numbers":"01 02 03 04 05","mega_ball":"9","multiplier":"3"},
			{"draw_date":"2023-01-03T00:00:00.000","winning_numbers":"05 12 23 34 45","mega_ball":"7","multiplier":"2"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	results, err := client.GetResults(start, end)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// sorted chronologically
	assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), results[0].Date)
	assert.Equal(t, []int{5, 12, 23, 34, 45}, results[0].Balls)
	assert.Equal(t, 7, results[0].Megaball)
	assert.Equal(t, 2, results[0].Multiplier)
	assert.Equal(t, time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), results[1].Date)
}

func TestGetResultsSkipsMalformedRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"draw_date":"2023-01-03T00:00:00.000","winning_numbers":"05 12 23 34 45","mega_ball":"7","multiplier":"2"},
			{"draw_date":"2023-01-06T00:00:00.000","winning_numbers":"01 02 03","mega_ball":"9","multiplier":"3"},
			{"draw_date":"2023-01-10T00:00:00.000","winning_numbers":"01 02 03 04 05","mega_ball":"9","multiplier":""},
			{"winning_numbers":"01 02 03 04 05","mega_ball":"9","multiplier":"3"},
			{"draw_date":"not-a-date","winning_numbers":"01 02 03 04 05","mega_ball":"9","multiplier":"3"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	results, err := client.GetResults(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].Megaball)
}

func TestGetResultsFiltersDatesBeforeStart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"draw_date":"2022-12-30T00:00:00.000","winning_numbers":"01 02 03 04 05","mega_ball":"9","multiplier":"3"},
			{"draw_date":"2023-01-03T00:00:00.000","winning_numbers":"05 12 23 34 45","mega_ball":"7","multiplier":"2"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	results, err := client.GetResults(
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), results[0].Date)
}

func TestGetResultsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, false)
	results, err := client.GetResults(time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestGetResultsConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, false)
	results, err := client.GetResults(time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestMockResults(t *testing.T) {
	client := NewClient("", true)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 14, 0, 0, 0, 0, time.UTC)

	results, err := client.GetResults(start, end)
	require.NoError(t, err)
	// Tuesdays and Fridays: Jan 3, 6, 10, 13
	require.Len(t, results, 4)

	for _, result := range results {
		day := result.Date.Weekday()
		assert.True(t, day == time.Tuesday || day == time.Friday)

		require.Len(t, result.Balls, 5)
		seen := make(map[int]bool)
		for i, ball := range result.Balls {
			assert.GreaterOrEqual(t, ball, 1)
			assert.LessOrEqual(t, ball, 69)
			assert.False(t, seen[ball])
			seen[ball] = true
			if i > 0 {
				assert.Less(t, result.Balls[i-1], ball)
			}
		}
		assert.GreaterOrEqual(t, result.Megaball, 1)
		assert.LessOrEqual(t, result.Megaball, 25)
		assert.GreaterOrEqual(t, result.Multiplier, 2)
		assert.LessOrEqual(t, result.Multiplier, 5)
	}
}
