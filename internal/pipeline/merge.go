package pipeline

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

// MergedRow is a profile row with its tract geometry attached.
type MergedRow struct {
	Row      model.RawAreaRow
	Geometry *geom.MultiPolygon
}

// MergeGeometry joins profile rows to tract geometry by GEOID. Rows without
// a geometry match are dropped and counted; an empty join result indicates a
// systemic identifier mismatch and is fatal.
func MergeGeometry(rows []model.RawAreaRow, geoms map[string]*geom.MultiPolygon) ([]MergedRow, int, error) {
	log := zap.L().With(zap.String("component", "pipeline.merge"))

	merged := make([]MergedRow, 0, len(rows))
	var dropped int

	for _, row := range rows {
		g, ok := geoms[row.GEOID]
		if !ok {
			dropped++
			continue
		}
		merged = append(merged, MergedRow{Row: row, Geometry: g})
	}

	if dropped > 0 {
		log.Warn("rows without matching geometry dropped", zap.Int("dropped", dropped))
	}

	if len(merged) == 0 {
		return nil, dropped, eris.Errorf(
			"merge: no profile rows matched geometry (%d rows, %d tracts); check that both sources use the same GEOID vintage",
			len(rows), len(geoms),
		)
	}

	log.Info("geometry merged",
		zap.Int("rows", len(merged)),
		zap.Int("dropped", dropped),
	)
	return merged, dropped, nil
}
