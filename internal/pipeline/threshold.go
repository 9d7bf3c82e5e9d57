// Package pipeline implements the batch stages that turn profile rows and
// tract geometry into the artifact payload: threshold calculation, the
// geometry merge, jurisdiction resolution, and view-model assembly. Each
// stage fully consumes its input before the next begins.
package pipeline

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/model"
)

// ComputeThresholds derives the 33rd/67th percentile classification bounds
// for every catalog indicator with at least one non-missing observation.
// Indicators with zero observations are absent from the result and stay
// unclassifiable downstream.
func ComputeThresholds(rows []model.RawAreaRow, cat *catalog.Catalog) map[string]model.Threshold {
	log := zap.L().With(zap.String("component", "pipeline.threshold"))

	thresholds := make(map[string]model.Threshold)
	for _, domain := range cat.Domains() {
		for _, id := range cat.IndicatorsFor(domain) {
			var values []float64
			for _, row := range rows {
				if v, ok := row.Values[id]; ok {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				continue
			}
			sort.Float64s(values)
			thresholds[id] = model.Threshold{
				P33:     percentile(values, 0.33),
				P67:     percentile(values, 0.67),
				Reverse: cat.HigherIsBetter(id),
			}
		}
	}

	log.Info("thresholds computed", zap.Int("indicators", len(thresholds)))
	return thresholds
}

// percentile returns the q-quantile of a sorted slice using linear
// interpolation between closest ranks.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
