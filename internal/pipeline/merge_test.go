package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

func squareTract() *geom.MultiPolygon {
	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)
	poly := geom.NewPolygon(geom.XY)
	_ = poly.Push(geom.NewLinearRingFlat(geom.XY, []float64{
		-77.5, 38.6,
		-77.5, 38.8,
		-77.3, 38.8,
		-77.3, 38.6,
		-77.5, 38.6,
	}))
	_ = mp.Push(poly)
	return mp
}

func TestMergeGeometry(t *testing.T) {
	rows := []model.RawAreaRow{
		{GEOID: "A"},
		{GEOID: "B"},
		{GEOID: "C"}, // no geometry
	}
	geoms := map[string]*geom.MultiPolygon{
		"A": squareTract(),
		"B": squareTract(),
	}

	merged, dropped, err := MergeGeometry(rows, geoms)

	require.NoError(t, err)
	assert.Len(t, merged, 2)
	assert.Equal(t, 1, dropped)
	assert.NotNil(t, merged[0].Geometry)
}

func TestMergeGeometry_EmptyJoinFatal(t *testing.T) {
	rows := []model.RawAreaRow{{GEOID: "A"}, {GEOID: "B"}}
	geoms := map[string]*geom.MultiPolygon{"Z": squareTract()}

	_, dropped, err := MergeGeometry(rows, geoms)

	assert.Error(t, err)
	assert.Equal(t, 2, dropped)
}

func TestMergeGeometry_DuplicateGEOIDsKeepGeometry(t *testing.T) {
	// A tract spanning two districts appears twice; both rows get geometry.
	rows := []model.RawAreaRow{
		{GEOID: "A", District: "COLES"},
		{GEOID: "A", District: "POTOMAC"},
	}
	geoms := map[string]*geom.MultiPolygon{"A": squareTract()}

	merged, dropped, err := MergeGeometry(rows, geoms)

	require.NoError(t, err)
	assert.Len(t, merged, 2)
	assert.Equal(t, 0, dropped)
}
