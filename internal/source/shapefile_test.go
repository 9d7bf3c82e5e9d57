package source

import (
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonToMultiPolygon(t *testing.T) {
	poly := &shp.Polygon{
		NumParts: 1,
		Parts:    []int32{0},
		Points: []shp.Point{
			{X: -77.5, Y: 38.6},
			{X: -77.5, Y: 38.8},
			{X: -77.3, Y: 38.8},
			{X: -77.3, Y: 38.6},
			{X: -77.5, Y: 38.6}, // closed ring
		},
	}

	mp := polygonToMultiPolygon(poly)
	require.NotNil(t, mp)
	assert.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, 4326, mp.SRID())

	b := mp.Bounds()
	assert.InDelta(t, -77.5, b.Min(0), 1e-9)
	assert.InDelta(t, 38.8, b.Max(1), 1e-9)
}

func TestPolygonToMultiPolygon_MultiPart(t *testing.T) {
	poly := &shp.Polygon{
		NumParts: 2,
		Parts:    []int32{0, 5},
		Points: []shp.Point{
			{X: -77.5, Y: 38.6},
			{X: -77.5, Y: 38.7},
			{X: -77.4, Y: 38.7},
			{X: -77.4, Y: 38.6},
			{X: -77.5, Y: 38.6},
			{X: -77.3, Y: 38.8},
			{X: -77.3, Y: 38.9},
			{X: -77.2, Y: 38.9},
			{X: -77.2, Y: 38.8},
			{X: -77.3, Y: 38.8},
		},
	}

	mp := polygonToMultiPolygon(poly)
	require.NotNil(t, mp)
	assert.Equal(t, 2, mp.NumPolygons())
}

func TestPolygonToMultiPolygon_Empty(t *testing.T) {
	assert.Nil(t, polygonToMultiPolygon(nil))
	assert.Nil(t, polygonToMultiPolygon(&shp.Polygon{}))
}

func TestLoadTracts_MissingFile(t *testing.T) {
	_, err := LoadTracts("/nonexistent/tl_2024_51_tract.shp", "153")
	assert.Error(t, err)
}
