package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

func TestParseJurisdiction_MultiWithProportions(t *testing.T) {
	j := ParseJurisdiction("COLES:39.91%,POTOMAC:60.09%")

	assert.Equal(t, []string{"COLES", "POTOMAC"}, j.Names)
	assert.InDelta(t, 39.91, j.Proportions["COLES"], 1e-9)
	assert.InDelta(t, 60.09, j.Proportions["POTOMAC"], 1e-9)
	assert.Equal(t, "POTOMAC", j.Primary)
	assert.True(t, j.MultiJurisdiction)
	assert.Equal(t, "POTOMAC (60.09%), COLES (39.91%)", j.Display)
}

func TestParseJurisdiction_BarePercentSuffix(t *testing.T) {
	j := ParseJurisdiction("GAINESVILLE15.18%")

	require.Equal(t, []string{"GAINESVILLE"}, j.Names)
	assert.InDelta(t, 15.18, j.Proportions["GAINESVILLE"], 1e-9)
	assert.Equal(t, "GAINESVILLE", j.Primary)
	assert.False(t, j.MultiJurisdiction)
}

func TestParseJurisdiction_SingleFullShare(t *testing.T) {
	j := ParseJurisdiction("WOODBRIDGE:100%")

	assert.Equal(t, "WOODBRIDGE", j.Display)
	assert.Equal(t, "WOODBRIDGE", j.Primary)
	assert.False(t, j.MultiJurisdiction)
}

func TestParseJurisdiction_BareName(t *testing.T) {
	j := ParseJurisdiction("NEABSCO")

	assert.Equal(t, []string{"NEABSCO"}, j.Names)
	assert.InDelta(t, 100.0, j.Proportions["NEABSCO"], 1e-9)
	assert.Equal(t, "NEABSCO", j.Display)
}

func TestParseJurisdiction_Sentinels(t *testing.T) {
	for _, input := range []string{"", "   ", model.NotAvailable} {
		j := ParseJurisdiction(input)

		assert.Empty(t, j.Names, "input %q", input)
		assert.Empty(t, j.Proportions, "input %q", input)
		assert.Equal(t, model.NotAvailable, j.Primary, "input %q", input)
		assert.Equal(t, model.NotAvailable, j.Display, "input %q", input)
		assert.False(t, j.MultiJurisdiction, "input %q", input)
	}
}

func TestParseJurisdiction_UnparseableProportion(t *testing.T) {
	j := ParseJurisdiction("COLES:abc%")

	// Silent fallback to 100; the pre-colon text is still the name.
	assert.Equal(t, []string{"COLES"}, j.Names)
	assert.InDelta(t, 100.0, j.Proportions["COLES"], 1e-9)
}

func TestParseJurisdiction_EqualProportionTieBreak(t *testing.T) {
	j := ParseJurisdiction("POTOMAC:50%,COLES:50%")

	// Ties resolve to the lexically smallest name.
	assert.Equal(t, "COLES", j.Primary)
}

func TestParseJurisdiction_FullShareEntryInMulti(t *testing.T) {
	j := ParseJurisdiction("BRENTSVILLE:100%,OCCOQUAN:20%")

	// A 100% entry renders bare even in a multi-jurisdiction display.
	assert.Equal(t, "BRENTSVILLE, OCCOQUAN (20.00%)", j.Display)
	assert.True(t, j.MultiJurisdiction)
}

func TestCombineJurisdictions_SingleRow(t *testing.T) {
	rows := []model.RawAreaRow{{District: "WOODBRIDGE:100%"}}
	assert.Equal(t, "WOODBRIDGE:100%", CombineJurisdictions(rows))

	rows = []model.RawAreaRow{{District: "X", DistrictCombined: "A:60%,B:40%"}}
	assert.Equal(t, "A:60%,B:40%", CombineJurisdictions(rows))

	rows = []model.RawAreaRow{{}}
	assert.Equal(t, model.NotAvailable, CombineJurisdictions(rows))
}

func TestCombineJurisdictions_MultiRowPrecomputedWins(t *testing.T) {
	rows := []model.RawAreaRow{
		{District: "COLES"},
		{District: "POTOMAC", DistrictCombined: "COLES:39.91%,POTOMAC:60.09%"},
	}
	assert.Equal(t, "COLES:39.91%,POTOMAC:60.09%", CombineJurisdictions(rows))
}

func TestCombineJurisdictions_MultiRowFallback(t *testing.T) {
	rows := []model.RawAreaRow{
		{District: "POTOMAC"},
		{District: "COLES"},
		{District: "COLES"},
		{District: "  "},
	}
	assert.Equal(t, "COLES, POTOMAC", CombineJurisdictions(rows))
}

func TestCombineJurisdictions_MultiRowSingleDistinct(t *testing.T) {
	rows := []model.RawAreaRow{
		{District: "NEABSCO"},
		{District: "NEABSCO"},
	}
	assert.Equal(t, "NEABSCO", CombineJurisdictions(rows))
}

func TestCombineJurisdictions_MultiRowNoneDistinct(t *testing.T) {
	rows := []model.RawAreaRow{{District: ""}, {District: ""}}
	assert.Equal(t, model.NotAvailable, CombineJurisdictions(rows))
}
