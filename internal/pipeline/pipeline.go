package pipeline

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/model"
)

// Result is the frozen output of a pipeline run, consumed by the artifact
// emitter.
type Result struct {
	Records    map[string]model.AreaRecord
	Thresholds map[string]model.Threshold
	Catalog    *catalog.Catalog
	Dropped    int
}

// Run executes the batch pipeline: filter the catalog to columns present in
// the dataset, compute thresholds, merge geometry, and resolve area records.
// Single-pass and single-threaded; each stage's output is immutable once
// produced.
func Run(profile []model.RawAreaRow, columns []string, geoms map[string]*geom.MultiPolygon, cat *catalog.Catalog) (*Result, error) {
	log := zap.L().With(zap.String("component", "pipeline"))

	if len(profile) == 0 {
		return nil, eris.New("pipeline: profile contains no rows")
	}

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	filtered := cat.Filter(func(id string) bool { return present[id] })

	thresholds := ComputeThresholds(profile, filtered)

	merged, dropped, err := MergeGeometry(profile, geoms)
	if err != nil {
		return nil, err
	}

	records := BuildAreaRecords(merged, filtered)

	log.Info("pipeline complete",
		zap.Int("areas", len(records)),
		zap.Int("thresholds", len(thresholds)),
		zap.Int("dropped_rows", dropped),
	)

	return &Result{
		Records:    records,
		Thresholds: thresholds,
		Catalog:    filtered,
		Dropped:    dropped,
	}, nil
}
