package test

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/atletiklab/biomotor/internal/biomotor/scoring"
)

func (s *IntegrationTestSuite) TestScoring_ScoreValue() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	var resp scoring.ScoreResponse
	s.getJSON(ctx, t, token, "/biomotor/test/sprint-30m/score?value=5.1", http.StatusOK, &resp)
	assert.Equal(t, "sprint-30m", resp.TestID)
	assert.Equal(t, 3, resp.Score)
	assert.Equal(t, "Average/Sedang", resp.Label)
	assert.Equal(t, "#FFC107", resp.Color)

	// second lookup is served from the bands cache
	s.getJSON(ctx, t, token, "/biomotor/test/sprint-30m/score?value=4.5", http.StatusOK, &resp)
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, "Excellent/Baik Sekali", resp.Label)

	// a time way over the table range clamps to the worst band
	s.getJSON(ctx, t, token, "/biomotor/test/sprint-30m/score?value=120", http.StatusOK, &resp)
	assert.Equal(t, 1, resp.Score)
}

func (s *IntegrationTestSuite) TestScoring_BadRequests() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	token := doLogin(ctx, t)

	s.getJSON(ctx, t, token, "/biomotor/test/sprint-30m/score?value=fast", http.StatusBadRequest, nil)
	s.getJSON(ctx, t, token, "/biomotor/test/sprint-30m/score", http.StatusBadRequest, nil)

	// beep-test has no bands seeded
	s.getJSON(ctx, t, token, "/biomotor/test/beep-test/score?value=12", http.StatusNotFound, nil)
}
