package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
	"github.com/atletiklab/biomotor/internal/reasoning"
	"github.com/atletiklab/biomotor/internal/telemetry/metrics"
	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
	"github.com/atletiklab/biomotor/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=advisor_mocks_test.go -package=advisor_test

type analyzer interface {
	Analyze(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type AnalysisResponse struct {
	Analysis         string                     `json:"analysis"`
	CategoryAverages []analysis.CategoryAverage `json:"categoryAverages"`
	Strengths        []string                   `json:"strengths"`
	Weaknesses       []string                   `json:"weaknesses"`
}

type errorResponse struct {
	Error   string             `json:"error"`
	Details []ValidationDetail `json:"details,omitempty"`
}

type Handler struct {
	analyzer analyzer
	metrics  *metrics.Manager
}

func NewHandler(analyzer analyzer, metrics *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  metrics,
	}
}

// HandleAnalyze aggregates the submitted test results, classifies strengths
// and weaknesses and relays a coaching prompt to the reasoning service. The
// analysis itself is recomputed here, client-sent averages are ignored.
func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.advisor.analyze")
	defer span.End()

	handler.metrics.CounterAnalysisRequests.Inc()
	startedAt := time.Now()
	defer func() {
		handler.metrics.HistogramAnalysisDuration.Observe(time.Since(startedAt).Seconds())
	}()

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		handler.fail(w, "invalid content type", http.StatusBadRequest, "bad_request")
		return
	}

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("analyze athlete, unmarshal json params: %s", err)
		handler.fail(w, "invalid request body", http.StatusBadRequest, "bad_request")
		return
	}

	if details := req.Validate(); len(details) > 0 {
		log.Debugf("analyze athlete [%s]: %d invalid fields", req.AthleteData.Name, len(details))
		writeErrorResponse(w, errorResponse{
			Error:   "invalid athlete data",
			Details: details,
		}, http.StatusBadRequest)
		handler.metrics.CounterAnalysisFailed.With(prometheus.Labels{"reason": "validation"}).Inc()
		return
	}

	athlete := req.AthleteData
	categoryAverages := analysis.AggregateResults(athlete.ScoredResults())
	classification := analysis.Classify(categoryAverages)

	answer, err := handler.analyzer.Analyze(ctx, systemPrompt, BuildPrompt(athlete, classification))
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, reasoning.ErrRateLimited):
			log.Warnf("analyze athlete [%s]: reasoning service rate limited", athlete.Name)
			handler.fail(w, "AI analysis rate limit exceeded. Please try again later.", http.StatusTooManyRequests, "rate_limited")
		case errors.Is(err, reasoning.ErrQuotaExhausted):
			log.Errorf("analyze athlete [%s]: reasoning service quota exhausted", athlete.Name)
			handler.fail(w, "AI analysis quota exceeded. Please contact support.", http.StatusPaymentRequired, "quota")
		default:
			log.Errorf("analyze athlete [%s]: %s", athlete.Name, err)
			handler.fail(w, "failed to analyze athlete data", http.StatusInternalServerError, "reasoning_error")
		}
		return
	}

	resp := AnalysisResponse{
		Analysis:         answer,
		CategoryAverages: categoryAverages,
		Strengths:        analysis.CategoryNames(classification.Strengths),
		Weaknesses:       analysis.CategoryNames(classification.Weaknesses),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("analyze athlete [%s], marshal response: %s", athlete.Name, err)
		handler.fail(w, "failed to analyze athlete data", http.StatusInternalServerError, "internal")
		return
	}

	log.Debugf(
		"athlete [%s] analyzed: %d categories, %d strengths, %d weaknesses",
		athlete.Name, len(categoryAverages), len(resp.Strengths), len(resp.Weaknesses),
	)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) fail(w http.ResponseWriter, message string, statusCode int, reason string) {
	writeErrorResponse(w, errorResponse{Error: message}, statusCode)
	handler.metrics.CounterAnalysisFailed.With(prometheus.Labels{"reason": reason}).Inc()
}

func writeErrorResponse(w http.ResponseWriter, resp errorResponse, statusCode int) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal error response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
