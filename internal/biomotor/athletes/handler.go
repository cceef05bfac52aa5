package athletes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
	"github.com/atletiklab/biomotor/internal/biomotor/scoring"
	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
	"github.com/atletiklab/biomotor/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=athletes_mocks_test.go -package=athletes_test

type athletesRepo interface {
	GetAthlete(ctx context.Context, id int) (*Athlete, error)
	ListAthletes(ctx context.Context) ([]Athlete, error)
	ListTeams(ctx context.Context) ([]Team, error)
	ListSessions(ctx context.Context, athleteID int) ([]analysis.Session, error)
	GetTestDefinitions(ctx context.Context) ([]TestDefinition, error)
}

type ListResponse struct {
	Athletes []Athlete `json:"athletes"`
	Teams    []Team    `json:"teams"`
	Total    int       `json:"total"`
}

type RadarResponse struct {
	Axes    []analysis.Axis       `json:"axes"`
	Entries []analysis.RadarEntry `json:"entries"`
}

type BMIResponse struct {
	BMI        float64 `json:"bmi"`
	Label      string  `json:"label"`
	Band       int     `json:"band"`
	GaugeAngle float64 `json:"gaugeAngle"`
	WeightKg   float64 `json:"weightKg"`
	HeightCm   float64 `json:"heightCm"`
}

type SummaryResponse struct {
	Athlete     Athlete                    `json:"athlete"`
	SessionDate *time.Time                 `json:"sessionDate,omitempty"`
	PerCategory []analysis.CategoryAverage `json:"perCategory"`
	Overall     *float64                   `json:"overall,omitempty"`
	Strengths   []string                   `json:"strengths"`
	Weaknesses  []string                   `json:"weaknesses"`
}

type Handler struct {
	repo athletesRepo
}

func NewHandler(repo athletesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.list")
	defer span.End()

	athletes, err := handler.repo.ListAthletes(ctx)
	if err != nil {
		log.Errorf("list athletes: %s", err)
		pkg.WriteJSONError(w, "failed to list athletes", http.StatusInternalServerError)
		return
	}
	teams, err := handler.repo.ListTeams(ctx)
	if err != nil {
		log.Errorf("list teams: %s", err)
		pkg.WriteJSONError(w, "failed to list athletes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, ListResponse{
		Athletes: athletes,
		Teams:    teams,
		Total:    len(athletes),
	})
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.trend")
	defer span.End()

	athlete, ok := handler.athleteFromRequest(ctx, w, r)
	if !ok {
		return
	}

	sessions, err := handler.repo.ListSessions(ctx, athlete.ID)
	if err != nil {
		log.Errorf("trend for athlete %d, list sessions: %s", athlete.ID, err)
		pkg.WriteJSONError(w, "failed to build trend", http.StatusInternalServerError)
		return
	}

	writeJSON(w, analysis.BuildTrend(sessions))
}

func (handler *Handler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.radar")
	defer span.End()

	athlete, ok := handler.athleteFromRequest(ctx, w, r)
	if !ok {
		return
	}

	defs, err := handler.repo.GetTestDefinitions(ctx)
	if err != nil {
		log.Errorf("radar for athlete %d, get test definitions: %s", athlete.ID, err)
		pkg.WriteJSONError(w, "failed to build radar", http.StatusInternalServerError)
		return
	}
	axes := radarAxes(defs)

	scores, err := handler.latestSessionScores(ctx, athlete.ID)
	if err != nil {
		log.Errorf("radar for athlete %d, latest scores: %s", athlete.ID, err)
		pkg.WriteJSONError(w, "failed to build radar", http.StatusInternalServerError)
		return
	}

	var comparison map[string]float64
	if compareParam := r.URL.Query().Get("compare"); compareParam != "" {
		compareID, err := strconv.Atoi(compareParam)
		if err != nil {
			pkg.WriteJSONError(w, "invalid compare athlete id", http.StatusBadRequest)
			return
		}
		if _, err := handler.repo.GetAthlete(ctx, compareID); err != nil {
			if errors.Is(err, ErrAthleteNotFound) {
				pkg.WriteJSONError(w, "compare athlete not found", http.StatusNotFound)
				return
			}
			log.Errorf("radar, get compare athlete %d: %s", compareID, err)
			pkg.WriteJSONError(w, "failed to build radar", http.StatusInternalServerError)
			return
		}
		comparison, err = handler.latestSessionScores(ctx, compareID)
		if err != nil {
			log.Errorf("radar, latest scores of compare athlete %d: %s", compareID, err)
			pkg.WriteJSONError(w, "failed to build radar", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, RadarResponse{
		Axes:    axes,
		Entries: analysis.BuildRadar(axes, scores, comparison),
	})
}

func (handler *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.bmi")
	defer span.End()

	athlete, ok := handler.athleteFromRequest(ctx, w, r)
	if !ok {
		return
	}

	if athlete.WeightKg == nil || athlete.HeightCm == nil {
		pkg.WriteJSONError(w, "athlete has no body measurements", http.StatusBadRequest)
		return
	}

	bmi := scoring.ComputeBMI(*athlete.WeightKg, *athlete.HeightCm)
	category := scoring.CategorizeBMI(bmi)

	writeJSON(w, BMIResponse{
		BMI:        bmi,
		Label:      category.Label,
		Band:       category.Band,
		GaugeAngle: scoring.GaugeAngle(bmi),
		WeightKg:   *athlete.WeightKg,
		HeightCm:   *athlete.HeightCm,
	})
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athletes.summary")
	defer span.End()

	athlete, ok := handler.athleteFromRequest(ctx, w, r)
	if !ok {
		return
	}

	sessions, err := handler.repo.ListSessions(ctx, athlete.ID)
	if err != nil {
		log.Errorf("summary for athlete %d, list sessions: %s", athlete.ID, err)
		pkg.WriteJSONError(w, "failed to build summary", http.StatusInternalServerError)
		return
	}

	resp := SummaryResponse{
		Athlete:     *athlete,
		PerCategory: []analysis.CategoryAverage{},
		Strengths:   []string{},
		Weaknesses:  []string{},
	}

	if len(sessions) > 0 {
		latest := latestSession(sessions)
		perCategory := analysis.AggregateResults(latest.Results)
		classification := analysis.Classify(perCategory)
		summary := analysis.SummarizeSession(latest.Results)

		resp.SessionDate = &latest.Date
		resp.PerCategory = perCategory
		resp.Overall = summary.Overall
		resp.Strengths = analysis.CategoryNames(classification.Strengths)
		resp.Weaknesses = analysis.CategoryNames(classification.Weaknesses)
	}

	writeJSON(w, resp)
}

// athleteFromRequest resolves the {id} path variable into an athlete and
// writes the error response itself when that fails.
func (handler *Handler) athleteFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Athlete, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteJSONError(w, "invalid athlete id", http.StatusBadRequest)
		return nil, false
	}

	athlete, err := handler.repo.GetAthlete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAthleteNotFound) {
			pkg.WriteJSONError(w, "athlete not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get athlete %d: %s", id, err)
		pkg.WriteJSONError(w, "failed to get athlete", http.StatusInternalServerError)
		return nil, false
	}

	return athlete, true
}

// latestSessionScores aggregates the most recent session of an athlete into
// a scores-by-category map. Athletes without sessions get an empty map, the
// radar then renders all axes at zero.
func (handler *Handler) latestSessionScores(ctx context.Context, athleteID int) (map[string]float64, error) {
	sessions, err := handler.repo.ListSessions(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return map[string]float64{}, nil
	}
	latest := latestSession(sessions)
	return analysis.ScoresByCategory(analysis.AggregateResults(latest.Results)), nil
}

func latestSession(sessions []analysis.Session) analysis.Session {
	latest := sessions[0]
	for _, session := range sessions[1:] {
		if session.Date.After(latest.Date) {
			latest = session
		}
	}
	return latest
}

// radarAxes derives the fixed axis list from the test definitions, one axis
// per distinct category, in definition order.
func radarAxes(defs []TestDefinition) []analysis.Axis {
	var axes []analysis.Axis
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		if _, ok := seen[def.CategoryID]; ok {
			continue
		}
		seen[def.CategoryID] = struct{}{}
		axes = append(axes, analysis.Axis{
			CategoryID: def.CategoryID,
			Label:      def.CategoryName,
		})
	}
	return axes
}

func writeJSON(w http.ResponseWriter, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
