// Package engine is the authoritative model of the filter/selection state
// machine embedded in the emitted artifact. The JavaScript in the artifact
// template mirrors this package function-for-function; behavior changes land
// here first so they stay testable.
package engine

import (
	"math"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

// MinScoreToken and MaxScoreToken bound the selectable score legend entries.
const (
	MinScoreToken = 1
	MaxScoreToken = 8
)

// Direction labels an indicator value relative to the threshold midpoint.
type Direction string

const (
	DirectionAbove   Direction = "Above Average"
	DirectionBelow   Direction = "Below Average"
	DirectionAverage Direction = "Average"
)

// Engine owns the interactive state for one rendered artifact: the two
// active filter sets, the selected area, and the active detail tab. One
// instance per artifact; no package-level state.
type Engine struct {
	records       map[string]model.AreaRecord
	thresholds    map[string]model.Threshold
	scores        map[int]bool
	jurisdictions map[string]bool
	selected      string
	activeTab     model.Domain
}

// New creates an engine over a frozen record set with no active filters and
// the first detail tab active.
func New(records map[string]model.AreaRecord, thresholds map[string]model.Threshold) *Engine {
	return &Engine{
		records:       records,
		thresholds:    thresholds,
		scores:        make(map[int]bool),
		jurisdictions: make(map[string]bool),
		activeTab:     model.DomainSocioeconomic,
	}
}

// ToggleScore adds the score token if absent and removes it if present,
// reporting whether it is active afterwards. Tokens outside the legend range
// are ignored.
func (e *Engine) ToggleScore(token int) bool {
	if token < MinScoreToken || token > MaxScoreToken {
		return false
	}
	if e.scores[token] {
		delete(e.scores, token)
		return false
	}
	e.scores[token] = true
	return true
}

// ToggleJurisdiction adds or removes a jurisdiction token, reporting whether
// it is active afterwards.
func (e *Engine) ToggleJurisdiction(name string) bool {
	if e.jurisdictions[name] {
		delete(e.jurisdictions, name)
		return false
	}
	e.jurisdictions[name] = true
	return true
}

// ActiveScores returns the active score tokens.
func (e *Engine) ActiveScores() []int {
	out := make([]int, 0, len(e.scores))
	for token := range e.scores {
		out = append(out, token)
	}
	return out
}

// ActiveJurisdictions returns the active jurisdiction tokens.
func (e *Engine) ActiveJurisdictions() []string {
	out := make([]string, 0, len(e.jurisdictions))
	for name := range e.jurisdictions {
		out = append(out, name)
	}
	return out
}

// ResetScores clears the score filter set.
func (e *Engine) ResetScores() {
	e.scores = make(map[int]bool)
}

// ResetJurisdictions clears the jurisdiction filter set.
func (e *Engine) ResetJurisdictions() {
	e.jurisdictions = make(map[string]bool)
}

// Reset clears both filter sets, restoring full emphasis to all areas.
func (e *Engine) Reset() {
	e.ResetScores()
	e.ResetJurisdictions()
}

// Dimmed reports whether an area renders de-emphasized under the current
// filters. The two dimensions combine with AND semantics: the area must pass
// the score gate and the jurisdiction gate. Within a dimension, tokens
// combine with OR. Unknown areas are never dimmed (their geometry stays
// interactive).
func (e *Engine) Dimmed(geoid string) bool {
	record, ok := e.records[geoid]
	if !ok {
		return false
	}
	return !e.passesScoreGate(record) || !e.passesJurisdictionGate(record)
}

func (e *Engine) passesScoreGate(record model.AreaRecord) bool {
	if len(e.scores) == 0 {
		return true
	}
	return e.scores[int(math.Floor(record.Score))]
}

func (e *Engine) passesJurisdictionGate(record model.AreaRecord) bool {
	if len(e.jurisdictions) == 0 {
		return true
	}
	for _, name := range record.Jurisdiction.Names {
		if e.jurisdictions[name] {
			return true
		}
	}
	return false
}

// Select marks an area as the single selected area, replacing any previous
// selection. A GEOID absent from the record set is a safe no-op and reports
// false. The active detail tab is unchanged across selections.
func (e *Engine) Select(geoid string) bool {
	if _, ok := e.records[geoid]; !ok {
		return false
	}
	e.selected = geoid
	return true
}

// Deselect clears the selection.
func (e *Engine) Deselect() {
	e.selected = ""
}

// Selected returns the currently selected area record, if any.
func (e *Engine) Selected() (model.AreaRecord, bool) {
	record, ok := e.records[e.selected]
	return record, ok
}

// SetTab records the active detail-panel tab. Tab choice is UI state, not
// area state: it persists across selections.
func (e *Engine) SetTab(tab model.Domain) {
	e.activeTab = tab
}

// ActiveTab returns the active detail-panel tab.
func (e *Engine) ActiveTab() model.Domain {
	return e.activeTab
}

// LabelVisible reports whether a jurisdiction's map label is shown: always
// when no jurisdiction filter is active, otherwise only for active tokens.
func (e *Engine) LabelVisible(name string) bool {
	if len(e.jurisdictions) == 0 {
		return true
	}
	return e.jurisdictions[name]
}

// IndicatorDirection classifies a value against its indicator's threshold
// midpoint. Values above the midpoint read "Above Average" for both
// polarities; the Reverse flag is carried in the threshold but does not
// invert the comparison (see DESIGN.md). Indicators without a threshold are
// unclassifiable and read "Average".
func (e *Engine) IndicatorDirection(indicatorID string, value float64) Direction {
	threshold, ok := e.thresholds[indicatorID]
	if !ok {
		return DirectionAverage
	}
	midpoint := (threshold.P33 + threshold.P67) / 2
	if value > midpoint {
		return DirectionAbove
	}
	return DirectionBelow
}
