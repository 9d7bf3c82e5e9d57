package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

func testRecords() map[string]model.AreaRecord {
	return map[string]model.AreaRecord{
		"T1": {
			GEOID: "T1", Score: 5.2,
			Jurisdiction: model.JurisdictionAssignment{Names: []string{"NEABSCO"}, Primary: "NEABSCO"},
		},
		"T2": {
			GEOID: "T2", Score: 4.9,
			Jurisdiction: model.JurisdictionAssignment{Names: []string{"POTOMAC"}, Primary: "POTOMAC"},
		},
		"T3": {
			GEOID: "T3", Score: 5.3,
			Jurisdiction: model.JurisdictionAssignment{
				Names:             []string{"COLES", "POTOMAC"},
				Primary:           "POTOMAC",
				MultiJurisdiction: true,
			},
		},
	}
}

func TestToggleScore_Idempotent(t *testing.T) {
	e := New(testRecords(), nil)

	assert.True(t, e.ToggleScore(5))
	assert.ElementsMatch(t, []int{5}, e.ActiveScores())

	// Toggling the same token again restores the prior state.
	assert.False(t, e.ToggleScore(5))
	assert.Empty(t, e.ActiveScores())
	assert.False(t, e.Dimmed("T2"))
}

func TestToggleScore_OutOfRangeIgnored(t *testing.T) {
	e := New(testRecords(), nil)

	assert.False(t, e.ToggleScore(0))
	assert.False(t, e.ToggleScore(9))
	assert.Empty(t, e.ActiveScores())
}

func TestToggleJurisdiction_Idempotent(t *testing.T) {
	e := New(testRecords(), nil)

	assert.True(t, e.ToggleJurisdiction("POTOMAC"))
	assert.False(t, e.ToggleJurisdiction("POTOMAC"))
	assert.Empty(t, e.ActiveJurisdictions())
}

func TestDimmed_CombinedFilters(t *testing.T) {
	e := New(testRecords(), nil)
	e.ToggleScore(5)
	e.ToggleJurisdiction("POTOMAC")

	// Score 5.2 matches token 5 but NEABSCO fails the jurisdiction gate.
	assert.True(t, e.Dimmed("T1"))
	// POTOMAC matches but 4.9 floors to 4, failing the score gate.
	assert.True(t, e.Dimmed("T2"))
	// 5.3 floors to 5 and POTOMAC is among the area's jurisdictions.
	assert.False(t, e.Dimmed("T3"))
}

func TestDimmed_SingleDimension(t *testing.T) {
	e := New(testRecords(), nil)
	e.ToggleScore(4)

	assert.True(t, e.Dimmed("T1"))
	assert.False(t, e.Dimmed("T2"))
	assert.True(t, e.Dimmed("T3"))
}

func TestDimmed_ScoreOrWithinDimension(t *testing.T) {
	e := New(testRecords(), nil)
	e.ToggleScore(4)
	e.ToggleScore(5)

	assert.False(t, e.Dimmed("T1"))
	assert.False(t, e.Dimmed("T2"))
	assert.False(t, e.Dimmed("T3"))
}

func TestDimmed_NoFiltersNothingDimmed(t *testing.T) {
	e := New(testRecords(), nil)

	for geoid := range testRecords() {
		assert.False(t, e.Dimmed(geoid))
	}
}

func TestDimmed_UnknownAreaNeverDimmed(t *testing.T) {
	e := New(testRecords(), nil)
	e.ToggleScore(1)

	assert.False(t, e.Dimmed("NOT-A-TRACT"))
}

func TestReset(t *testing.T) {
	e := New(testRecords(), nil)
	e.ToggleScore(3)
	e.ToggleJurisdiction("COLES")

	e.Reset()

	assert.Empty(t, e.ActiveScores())
	assert.Empty(t, e.ActiveJurisdictions())
	assert.False(t, e.Dimmed("T1"))
}

func TestSelect_UnknownIsNoOp(t *testing.T) {
	e := New(testRecords(), nil)
	require.True(t, e.Select("T1"))

	assert.False(t, e.Select("NOT-A-TRACT"))

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "T1", selected.GEOID)
}

func TestSelect_ReplacesPrevious(t *testing.T) {
	e := New(testRecords(), nil)
	e.Select("T1")
	e.Select("T2")

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "T2", selected.GEOID)

	e.Deselect()
	_, ok = e.Selected()
	assert.False(t, ok)
}

func TestTabPersistsAcrossSelections(t *testing.T) {
	e := New(testRecords(), nil)
	assert.Equal(t, model.DomainSocioeconomic, e.ActiveTab())

	e.SetTab(model.DomainMobility)
	e.Select("T1")
	e.Select("T2")

	assert.Equal(t, model.DomainMobility, e.ActiveTab())
}

func TestLabelVisible(t *testing.T) {
	e := New(testRecords(), nil)

	assert.True(t, e.LabelVisible("COLES"))

	e.ToggleJurisdiction("POTOMAC")
	assert.True(t, e.LabelVisible("POTOMAC"))
	assert.False(t, e.LabelVisible("COLES"))
}

func TestIndicatorDirection(t *testing.T) {
	thresholds := map[string]model.Threshold{
		"UNEMPPCT":           {P33: 3.0, P67: 7.0},
		"percent_homeowners": {P33: 40.0, P67: 80.0, Reverse: true},
	}
	e := New(testRecords(), thresholds)

	assert.Equal(t, DirectionAbove, e.IndicatorDirection("UNEMPPCT", 6.0))
	assert.Equal(t, DirectionBelow, e.IndicatorDirection("UNEMPPCT", 4.0))
	// Midpoint itself reads below.
	assert.Equal(t, DirectionBelow, e.IndicatorDirection("UNEMPPCT", 5.0))

	// Reverse polarity does not flip the comparison.
	assert.Equal(t, DirectionAbove, e.IndicatorDirection("percent_homeowners", 70.0))
	assert.Equal(t, DirectionBelow, e.IndicatorDirection("percent_homeowners", 50.0))

	assert.Equal(t, DirectionAverage, e.IndicatorDirection("PM25", 12.0))
}
