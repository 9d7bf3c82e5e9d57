package pipeline

import (
	"go.uber.org/zap"

	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/model"
)

// BuildAreaRecords resolves merged rows into exactly one AreaRecord per
// GEOID. Rows sharing a GEOID (one per intersecting jurisdiction) are
// combined; indicator values and rankings come from the first row, which the
// source guarantees to be consistent across duplicates.
func BuildAreaRecords(merged []MergedRow, cat *catalog.Catalog) map[string]model.AreaRecord {
	log := zap.L().With(zap.String("component", "pipeline.viewmodel"))

	groups := make(map[string][]MergedRow)
	var order []string
	for _, m := range merged {
		if _, seen := groups[m.Row.GEOID]; !seen {
			order = append(order, m.Row.GEOID)
		}
		groups[m.Row.GEOID] = append(groups[m.Row.GEOID], m)
	}

	records := make(map[string]model.AreaRecord, len(groups))
	var multi int

	for _, geoid := range order {
		group := groups[geoid]
		base := group[0]

		rows := make([]model.RawAreaRow, len(group))
		for i, m := range group {
			rows[i] = m.Row
		}
		assignment := ParseJurisdiction(CombineJurisdictions(rows))
		if assignment.MultiJurisdiction {
			multi++
		}

		ranks := make(map[model.Domain]int)
		topIndicators := make(map[model.Domain][]string)
		for _, key := range catalog.RankedSourceDomains() {
			public := catalog.PublicDomain(key)
			if rank, ok := base.Row.DomainRanks[key]; ok {
				ranks[public] = rank
			}
			var names []string
			for _, id := range base.Row.DomainVars[key] {
				names = append(names, cat.DisplayName(id))
			}
			if len(names) > 0 {
				topIndicators[public] = names
			}
		}

		displayID := geoid
		if assignment.MultiJurisdiction {
			displayID += "*"
		}

		topDomain := base.Row.TopDomain
		if topDomain != "" {
			topDomain = string(catalog.PublicDomain(topDomain))
		}

		records[geoid] = model.AreaRecord{
			GEOID:               geoid,
			DisplayID:           displayID,
			Score:               base.Row.Score,
			Tier:                base.Row.Tier,
			TopDomain:           topDomain,
			DomainRanks:         ranks,
			DomainTopIndicators: topIndicators,
			Jurisdiction:        assignment,
			Neighborhood:        orNotAvailable(base.Row.Neighborhood),
			FirstDue:            orNotAvailable(base.Row.FirstDue),
			Geometry:            base.Geometry,
			Values:              base.Row.Values,
		}
	}

	log.Info("area records built",
		zap.Int("areas", len(records)),
		zap.Int("multi_jurisdiction", multi),
	)
	return records
}

func orNotAvailable(s string) string {
	if s == "" {
		return model.NotAvailable
	}
	return s
}
