package scoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
	"github.com/atletiklab/biomotor/pkg"
)

type ScoreResponse struct {
	TestID string  `json:"testId"`
	Value  float64 `json:"value"`
	Score  int     `json:"score"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
}

type Handler struct {
	lookup Lookup
}

func NewHandler(lookup Lookup) *Handler {
	return &Handler{
		lookup: lookup,
	}
}

// HandleScore scores a single raw measured value against the norm table of
// the test in the path, e.g. GET /biomotor/test/sprint-30m/score?value=4.9.
func (handler *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.scoring.score")
	defer span.End()

	testID := mux.Vars(r)["testId"]

	valueParam := r.URL.Query().Get("value")
	if valueParam == "" {
		pkg.WriteJSONError(w, "missing value", http.StatusBadRequest)
		return
	}
	value, err := strconv.ParseFloat(valueParam, 64)
	if err != nil {
		pkg.WriteJSONError(w, "invalid value", http.StatusBadRequest)
		return
	}

	score, err := handler.lookup.ScoreForValue(ctx, testID, value)
	if err != nil {
		if errors.Is(err, ErrNoScoreBands) {
			pkg.WriteJSONError(w, "no score bands for test", http.StatusNotFound)
			return
		}
		log.Errorf("score value %f for test %s: %s", value, testID, err)
		pkg.WriteJSONError(w, "failed to score value", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ScoreResponse{
		TestID: testID,
		Value:  value,
		Score:  score,
		Label:  handler.lookup.LabelForScore(score),
		Color:  handler.lookup.ColorForScore(score),
	})
	if err != nil {
		log.Errorf("marshal score response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
