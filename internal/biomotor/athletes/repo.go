package athletes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetAthlete(ctx context.Context, id int) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, age, gender, sport, team_id, weight_kg, height_cm, created_at
			FROM athlete
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	athletes, err := r.rows2athletes(rows)
	if err != nil {
		return nil, err
	}

	if len(athletes) != 1 {
		return nil, ErrAthleteNotFound
	}

	return &athletes[0], nil
}

func (r *Repo) ListAthletes(ctx context.Context) (_ []Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, age, gender, sport, team_id, weight_kg, height_cm, created_at
			FROM athlete
			ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	athletes, err := r.rows2athletes(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2athletes: %w", err)
	}
	return athletes, nil
}

func (r *Repo) ListTeams(ctx context.Context) (_ []Team, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.teams")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, sport FROM team ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Name, &team.Sport); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return teams, nil
}

// ListSessions returns all test sessions of one athlete, each with its
// scored results attached, ordered oldest first.
func (r *Repo) ListSessions(ctx context.Context, athleteID int) (_ []analysis.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete.id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, athlete_id, session_date, notes
			FROM test_session
			WHERE athlete_id = $1
			ORDER BY session_date;`,
		athleteID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	var sessions []analysis.Session
	for rows.Next() {
		var session analysis.Session
		if err := rows.Scan(&session.ID, &session.AthleteID, &session.Date, &session.Notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows: %w", err)
	}
	rows.Close()

	for i := range sessions {
		results, err := r.sessionResults(ctx, sessions[i].ID)
		if err != nil {
			return nil, fmt.Errorf("session %d results: %w", sessions[i].ID, err)
		}
		sessions[i].Results = results
	}

	return sessions, nil
}

func (r *Repo) sessionResults(ctx context.Context, sessionID int) ([]analysis.ScoredResult, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				td.category_id, td.category_name, tr.test_id, td.test_name,
				tr.value, td.unit, tr.score, ts.session_date
			FROM test_result tr
			JOIN test_definition td ON tr.test_id = td.test_id
			JOIN test_session ts ON tr.session_id = ts.id
			WHERE tr.session_id = $1
			ORDER BY tr.id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []analysis.ScoredResult
	for rows.Next() {
		var res analysis.ScoredResult
		if err := rows.Scan(
			&res.CategoryID, &res.CategoryName, &res.TestID, &res.TestName,
			&res.Value, &res.Unit, &res.Score, &res.Date,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Repo) GetTestDefinitions(ctx context.Context) (_ []TestDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.testdefinitions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT test_id, test_name, category_id, category_name, unit
			FROM test_definition
			ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var defs []TestDefinition
	for rows.Next() {
		var def TestDefinition
		if err := rows.Scan(&def.TestID, &def.TestName, &def.CategoryID, &def.CategoryName, &def.Unit); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return defs, nil
}

func (r *Repo) rows2athletes(rows pgx.Rows) ([]Athlete, error) {
	var athletes []Athlete
	for rows.Next() {
		var athlete Athlete
		if err := rows.Scan(
			&athlete.ID, &athlete.Name, &athlete.Age, &athlete.Gender, &athlete.Sport,
			&athlete.TeamID, &athlete.WeightKg, &athlete.HeightCm, &athlete.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		athletes = append(athletes, athlete)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}
