// Package artifact assembles and emits the self-contained interactive HTML
// map. The emitted file carries everything it needs inline: the GeoJSON
// feature collection, per-area records, thresholds, and the catalog tables
// the client-side filter logic reads.
package artifact

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/model"
	"github.com/grit-analytics/opportunity-map/internal/pipeline"
)

// Label positions a jurisdiction name on the map. The anchor is the center
// of the union of bounding boxes of the areas whose primary jurisdiction it
// is.
type Label struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Payload is everything the HTML template interpolates.
type Payload struct {
	Title            string
	CenterLat        float64
	CenterLng        float64
	FeatureJSON      []byte                     // GeoJSON FeatureCollection
	Records          map[string]model.AreaRecord // keyed by GEOID
	Thresholds       map[string]model.Threshold
	DomainIndicators map[model.Domain][]string // ranked public domains -> indicator ids
	IndicatorNames   map[string]string         // indicator id -> display name
	Jurisdictions    []string                  // sorted union across all areas
	Labels           []Label
}

// BuildPayload converts a pipeline result into the template payload.
func BuildPayload(title string, result *pipeline.Result) (*Payload, error) {
	if len(result.Records) == 0 {
		return nil, eris.New("artifact: no area records to render")
	}

	features, bounds, err := buildFeatures(result.Records)
	if err != nil {
		return nil, err
	}
	featureJSON, err := (&geojson.FeatureCollection{Features: features}).MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "artifact: marshal feature collection")
	}

	cat := result.Catalog
	domainIndicators := make(map[model.Domain][]string)
	indicatorNames := make(map[string]string)
	for _, key := range catalog.RankedSourceDomains() {
		public := catalog.PublicDomain(key)
		ids := cat.IndicatorsFor(public)
		domainIndicators[public] = ids
		for _, id := range ids {
			indicatorNames[id] = cat.DisplayName(id)
		}
	}
	// Demographics carries no rank but still gets a detail tab.
	demo := cat.IndicatorsFor(model.DomainDemographics)
	domainIndicators[model.DomainDemographics] = demo
	for _, id := range demo {
		indicatorNames[id] = cat.DisplayName(id)
	}

	return &Payload{
		Title:            title,
		CenterLat:        (bounds.Min(1) + bounds.Max(1)) / 2,
		CenterLng:        (bounds.Min(0) + bounds.Max(0)) / 2,
		FeatureJSON:      featureJSON,
		Records:          result.Records,
		Thresholds:       result.Thresholds,
		DomainIndicators: domainIndicators,
		IndicatorNames:   indicatorNames,
		Jurisdictions:    jurisdictionUnion(result.Records),
		Labels:           buildLabels(result.Records),
	}, nil
}

func buildFeatures(records map[string]model.AreaRecord) ([]*geojson.Feature, *geom.Bounds, error) {
	geoids := sortedGEOIDs(records)
	features := make([]*geojson.Feature, 0, len(geoids))
	bounds := geom.NewBounds(geom.XY)

	for _, geoid := range geoids {
		record := records[geoid]
		if record.Geometry == nil {
			return nil, nil, eris.Errorf("artifact: area %s has no geometry", geoid)
		}
		bounds.Extend(record.Geometry)

		props := map[string]any{
			"geoid": record.GEOID,
			"score": record.Score,
		}
		for id, v := range record.Values {
			props[id] = v
		}
		features = append(features, &geojson.Feature{
			ID:         record.GEOID,
			Geometry:   record.Geometry,
			Properties: props,
		})
	}
	return features, bounds, nil
}

func jurisdictionUnion(records map[string]model.AreaRecord) []string {
	seen := make(map[string]bool)
	for _, record := range records {
		for _, name := range record.Jurisdiction.Names {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildLabels(records map[string]model.AreaRecord) []Label {
	perName := make(map[string]*geom.Bounds)
	for _, record := range records {
		primary := record.Jurisdiction.Primary
		if primary == "" || primary == model.NotAvailable || record.Geometry == nil {
			continue
		}
		b, ok := perName[primary]
		if !ok {
			b = geom.NewBounds(geom.XY)
			perName[primary] = b
		}
		b.Extend(record.Geometry)
	}

	labels := make([]Label, 0, len(perName))
	for name, b := range perName {
		labels = append(labels, Label{
			Name: name,
			Lat:  (b.Min(1) + b.Max(1)) / 2,
			Lng:  (b.Min(0) + b.Max(0)) / 2,
		})
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Name < labels[j].Name })
	return labels
}

func sortedGEOIDs(records map[string]model.AreaRecord) []string {
	geoids := make([]string, 0, len(records))
	for geoid := range records {
		geoids = append(geoids, geoid)
	}
	sort.Strings(geoids)
	return geoids
}
