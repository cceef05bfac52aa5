package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=scoring_mocks_test.go -package=scoring

var ErrNoScoreBands = errors.New("no score bands for test")

// Lookup maps raw measured values onto 1..5 scores and scores onto
// display labels/colors. The band tables are external data, the scoring
// pipeline never redefines them.
type Lookup interface {
	ScoreForValue(ctx context.Context, testID string, value float64) (int, error)
	LabelForScore(score int) string
	ColorForScore(score int) string
}

var scoreLabels = map[int]string{
	1: "Very Poor/Kurang Sekali",
	2: "Poor/Kurang",
	3: "Average/Sedang",
	4: "Good/Baik",
	5: "Excellent/Baik Sekali",
}

var scoreColors = map[int]string{
	1: "#F44336",
	2: "#FF9800",
	3: "#FFC107",
	4: "#8BC34A",
	5: "#4CAF50",
}

// ScoreBand is one row of the per-test norm table: raw values within
// [LowerBound, UpperBound) map to Score. For lower-is-better tests (sprints)
// the table simply carries inverted bounds per score.
type ScoreBand struct {
	TestID     string  `json:"testId"`
	Score      int     `json:"score"`
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
}

// Contains reports whether value falls into this band, upper bound exclusive.
func (b ScoreBand) Contains(value float64) bool {
	return value >= b.LowerBound && value < b.UpperBound
}

const (
	bandsCacheSize   = 10 * 1024 * 1024
	bandsCacheExpire = 60 * 60 // seconds
)

// TableLookup is the Lookup implementation backed by the test_score_band
// table, with a freecache layer so the norm tables are not re-read per result.
type TableLookup struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewTableLookup(db *pgxpool.Pool) *TableLookup {
	return &TableLookup{
		db:    db,
		cache: freecache.NewCache(bandsCacheSize),
	}
}

func (l *TableLookup) ScoreForValue(ctx context.Context, testID string, value float64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scoring.lookup.scoreForValue")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("test.id", testID))

	bands, err := l.bandsForTest(ctx, testID)
	if err != nil {
		return 0, err
	}
	if len(bands) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoScoreBands, testID)
	}

	for _, band := range bands {
		if band.Contains(value) {
			return band.Score, nil
		}
	}

	// out of table range: clamp to the nearest band
	lowest, highest := bands[0], bands[0]
	for _, band := range bands[1:] {
		if band.LowerBound < lowest.LowerBound {
			lowest = band
		}
		if band.UpperBound > highest.UpperBound {
			highest = band
		}
	}
	if value < lowest.LowerBound {
		return lowest.Score, nil
	}
	return highest.Score, nil
}

func (l *TableLookup) LabelForScore(score int) string {
	return scoreLabels[score]
}

func (l *TableLookup) ColorForScore(score int) string {
	return scoreColors[score]
}

func (l *TableLookup) bandsForTest(ctx context.Context, testID string) ([]ScoreBand, error) {
	cacheKey := []byte("bands::" + testID)
	if cached, err := l.cache.Get(cacheKey); err == nil {
		var bands []ScoreBand
		if err := json.Unmarshal(cached, &bands); err == nil {
			return bands, nil
		}
		log.Errorf("failed to unmarshal cached score bands for test %s, falling back to db", testID)
	}

	rows, err := l.db.Query(
		ctx,
		`SELECT test_id, score, lower_bound, upper_bound
			FROM test_score_band
			WHERE test_id = $1
			ORDER BY score;`,
		testID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bands []ScoreBand
	for rows.Next() {
		var band ScoreBand
		if err := rows.Scan(&band.TestID, &band.Score, &band.LowerBound, &band.UpperBound); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		bands = append(bands, band)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if bandsJson, err := json.Marshal(bands); err == nil {
		if err := l.cache.Set(cacheKey, bandsJson, bandsCacheExpire); err != nil {
			log.Errorf("failed to cache score bands for test %s: %s", testID, err)
		}
	}

	return bands, nil
}
