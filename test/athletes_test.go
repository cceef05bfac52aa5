package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
	"github.com/atletiklab/biomotor/internal/biomotor/athletes"
)

func (s *IntegrationTestSuite) getJSON(ctx context.Context, t *testing.T, token, path string, expectedStatus int, out any) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+path, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, expectedStatus, resp.StatusCode)

	if out == nil {
		return
	}
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(respBytes, out))
}

func (s *IntegrationTestSuite) TestAthletes_List() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var resp athletes.ListResponse
	s.getJSON(ctx, t, token, "/biomotor/athletes", http.StatusOK, &resp)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Bima Putra", resp.Athletes[0].Name)
	assert.Equal(t, "Dewi Lestari", resp.Athletes[1].Name)
	require.Len(t, resp.Teams, 1)
	assert.Equal(t, "U18 Sprint", resp.Teams[0].Name)
}

func (s *IntegrationTestSuite) TestAthletes_Trend() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var trend analysis.Trend
	s.getJSON(ctx, t, token, "/biomotor/athlete/1/trend", http.StatusOK, &trend)

	require.Len(t, trend.Points, 2)
	assert.Equal(t, "10 Mar 2025", trend.Points[0].DateLabel)
	assert.Equal(t, "02 May 2025", trend.Points[1].DateLabel)
	assert.InDelta(t, 2.0, trend.Points[0].Categories["speed"], 0.001)
	assert.InDelta(t, 4.5, trend.Points[1].Categories["strength"], 0.001)
	require.NotNil(t, trend.Points[1].Overall)
	assert.InDelta(t, 4.0, *trend.Points[1].Overall, 0.001)
	assert.Len(t, trend.Categories, 2)
}

func (s *IntegrationTestSuite) TestAthletes_Radar() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var resp athletes.RadarResponse
	s.getJSON(ctx, t, token, "/biomotor/athlete/1/radar?compare=2", http.StatusOK, &resp)

	require.Len(t, resp.Axes, 3)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "Speed", resp.Entries[0].Label)
	assert.InDelta(t, 3.0, resp.Entries[0].Score, 0.001)
	require.NotNil(t, resp.Entries[0].Comparison)
	assert.InDelta(t, 5.0, *resp.Entries[0].Comparison, 0.001)
	// endurance untested for both athletes, axis stays at zero
	assert.Zero(t, resp.Entries[2].Score)
	require.NotNil(t, resp.Entries[2].Comparison)
	assert.Zero(t, *resp.Entries[2].Comparison)
}

func (s *IntegrationTestSuite) TestAthletes_BMI() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var resp athletes.BMIResponse
	s.getJSON(ctx, t, token, "/biomotor/athlete/1/bmi", http.StatusOK, &resp)
	assert.InDelta(t, 20.76, resp.BMI, 0.01)
	assert.Equal(t, "Normal", resp.Label)

	// athlete 2 has no body measurements
	s.getJSON(ctx, t, token, "/biomotor/athlete/2/bmi", http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestAthletes_Summary() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var resp athletes.SummaryResponse
	s.getJSON(ctx, t, token, "/biomotor/athlete/1/summary", http.StatusOK, &resp)

	assert.Equal(t, "Dewi Lestari", resp.Athlete.Name)
	require.Len(t, resp.PerCategory, 2)
	require.NotNil(t, resp.Overall)
	assert.InDelta(t, 4.0, *resp.Overall, 0.001)
	assert.Equal(t, []string{"Strength"}, resp.Strengths)
	assert.Empty(t, resp.Weaknesses)
}

func (s *IntegrationTestSuite) TestAthletes_NotFound() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/biomotor/athlete/999/summary", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
