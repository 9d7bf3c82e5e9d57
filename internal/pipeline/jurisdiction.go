package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

// trailingPercent matches a bare numeric-percent suffix with no separator,
// e.g. the "15.18%" in "GAINESVILLE15.18%".
var trailingPercent = regexp.MustCompile(`(\d+\.?\d*)%$`)

// ParseJurisdiction parses a raw jurisdiction string into a structured
// assignment. Supported segment forms, comma-separated:
//
//	NAME:39.91%   explicit proportion
//	NAME15.18%    proportion with no separator
//	NAME          bare name, treated as 100%
//
// A proportion that fails to parse silently falls back to 100. Blank input
// or the "Not Available" sentinel yields an empty assignment.
func ParseJurisdiction(s string) model.JurisdictionAssignment {
	s = strings.TrimSpace(s)
	if s == "" || s == model.NotAvailable {
		return model.JurisdictionAssignment{
			Proportions: map[string]float64{},
			Primary:     model.NotAvailable,
			Display:     model.NotAvailable,
		}
	}

	var names []string
	proportions := make(map[string]float64)

	add := func(name string, prop float64) {
		names = append(names, name)
		proportions[name] = prop
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if idx := strings.Index(part, ":"); idx != -1 {
			name := strings.TrimSpace(part[:idx])
			propStr := strings.TrimSuffix(strings.TrimSpace(part[idx+1:]), "%")
			if prop, err := strconv.ParseFloat(propStr, 64); err == nil {
				add(name, prop)
			} else {
				add(name, 100.0)
			}
			continue
		}

		if m := trailingPercent.FindStringSubmatchIndex(part); m != nil {
			propStr := part[m[2]:m[3]]
			name := strings.TrimSpace(part[:m[0]])
			if prop, err := strconv.ParseFloat(propStr, 64); err == nil && name != "" {
				add(name, prop)
			} else {
				add(part, 100.0)
			}
			continue
		}

		add(part, 100.0)
	}

	if len(names) == 0 {
		return model.JurisdictionAssignment{
			Proportions: map[string]float64{},
			Primary:     model.NotAvailable,
			Display:     model.NotAvailable,
		}
	}

	return model.JurisdictionAssignment{
		Names:             names,
		Proportions:       proportions,
		Primary:           primaryJurisdiction(proportions),
		Display:           displayText(names, proportions),
		MultiJurisdiction: len(names) > 1,
	}
}

// primaryJurisdiction returns the name with the highest proportion. Equal
// proportions resolve to the lexically smallest name, which keeps the choice
// deterministic across runs.
func primaryJurisdiction(proportions map[string]float64) string {
	names := make([]string, 0, len(proportions))
	for name := range proportions {
		names = append(names, name)
	}
	sort.Strings(names)

	primary := names[0]
	for _, name := range names[1:] {
		if proportions[name] > proportions[primary] {
			primary = name
		}
	}
	return primary
}

// displayText renders the human-readable jurisdiction string: a single
// jurisdiction shows its bare name; multiple sort descending by proportion
// and show "NAME (P.PP%)", except full-share entries which stay bare.
func displayText(names []string, proportions map[string]float64) string {
	if len(names) == 1 {
		return names[0]
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := proportions[sorted[i]], proportions[sorted[j]]
		if pi != pj {
			return pi > pj
		}
		return sorted[i] < sorted[j]
	})

	parts := make([]string, 0, len(sorted))
	for _, name := range sorted {
		if prop := proportions[name]; prop == 100.0 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s (%.2f%%)", name, prop))
		}
	}
	return strings.Join(parts, ", ")
}

// CombineJurisdictions produces the single raw jurisdiction string for all
// rows sharing one GEOID. A precomputed combined string wins when any row
// carries one (rows are assumed consistent); otherwise distinct non-blank
// names are joined in lexical order.
func CombineJurisdictions(rows []model.RawAreaRow) string {
	if len(rows) == 1 {
		if rows[0].DistrictCombined != "" {
			return rows[0].DistrictCombined
		}
		if rows[0].District != "" {
			return rows[0].District
		}
		return model.NotAvailable
	}

	for _, row := range rows {
		if row.DistrictCombined != "" {
			return row.DistrictCombined
		}
	}

	seen := make(map[string]bool)
	var distinct []string
	for _, row := range rows {
		name := strings.TrimSpace(row.District)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		distinct = append(distinct, name)
	}

	switch len(distinct) {
	case 0:
		return model.NotAvailable
	case 1:
		return distinct[0]
	default:
		sort.Strings(distinct)
		return strings.Join(distinct, ", ")
	}
}
