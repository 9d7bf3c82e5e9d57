// Package model defines the core data types shared across the pipeline:
// raw profile rows, resolved area records, thresholds, and run metadata.
package model

import (
	"github.com/twpayne/go-geom"
)

// Domain is one of the seven fixed thematic indicator groupings.
type Domain string

const (
	DomainSocioeconomic        Domain = "Socioeconomic"
	DomainHousing              Domain = "Housing"
	DomainMobility             Domain = "Mobility"
	DomainTransportationSafety Domain = "Transportation Safety"
	DomainEnvironmental        Domain = "Environmental"
	DomainPublicHealth         Domain = "Public Health"
	DomainDemographics         Domain = "Demographics"
)

// NotAvailable is the sentinel used wherever a value is missing from the
// source data: blank jurisdiction strings, absent neighborhoods, etc.
const NotAvailable = "Not Available"

// RawAreaRow is one source record from the opportunity profile. A tract that
// straddles multiple magisterial districts appears as multiple rows sharing
// the same GEOID, one per district.
type RawAreaRow struct {
	GEOID            string
	Score            float64
	Tier             string
	TopDomain        string // source-schema domain key, renamed on output
	District         string // raw jurisdiction-assignment string
	DistrictCombined string // precomputed combined string, may be blank
	Neighborhood     string
	FirstDue         string
	Values           map[string]float64  // indicator id -> value; missing values absent
	DomainRanks      map[string]int      // source domain key -> rank (1 = most limiting)
	DomainVars       map[string][]string // source domain key -> up to 3 raw indicator ids
}

// JurisdictionAssignment is the parsed form of a raw jurisdiction string.
type JurisdictionAssignment struct {
	Names             []string           `json:"names"`
	Proportions       map[string]float64 `json:"proportions"`
	Primary           string             `json:"primary"`
	Display           string             `json:"display"`
	MultiJurisdiction bool               `json:"multi"`
}

// Threshold holds the percentile classification bounds for one indicator.
// Reverse marks "higher is better" indicators; the comparison itself does
// not change direction (see DESIGN.md).
type Threshold struct {
	P33     float64 `json:"p33"`
	P67     float64 `json:"p67"`
	Reverse bool    `json:"reverse"`
}

// AreaRecord is the canonical per-tract record after jurisdiction
// resolution. Exactly one exists per GEOID; geometry is never nil.
// Geometry and Values are carried into the artifact's GeoJSON features
// rather than the areaRecords map, so they are excluded from JSON here.
type AreaRecord struct {
	GEOID               string                 `json:"geoid"`
	DisplayID           string                 `json:"displayId"` // GEOID, "*"-suffixed when multi-jurisdiction
	Score               float64                `json:"score"`
	Tier                string                 `json:"tier"`
	TopDomain           string                 `json:"topDomain"`
	DomainRanks         map[Domain]int         `json:"domainRanks"`
	DomainTopIndicators map[Domain][]string    `json:"domainTopIndicators"`
	Jurisdiction        JurisdictionAssignment `json:"jurisdiction"`
	Neighborhood        string                 `json:"neighborhood"`
	FirstDue            string                 `json:"firstDue"`
	Geometry            *geom.MultiPolygon     `json:"-"`
	Values              map[string]float64     `json:"-"`
}
