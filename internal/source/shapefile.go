package source

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// LoadTracts reads a TIGER/Line tract shapefile and returns geometry keyed
// by GEOID. When countyFIPS is non-empty, records whose COUNTYFP attribute
// differs are excluded; if the filter would remove everything, the full set
// is kept (mirrors running against a pre-filtered extract).
func LoadTracts(path, countyFIPS string) (map[string]*geom.MultiPolygon, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "shapefile: open %s", path)
	}
	defer func() { _ = reader.Close() }()

	// Build field name -> index map.
	fields := reader.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		name := strings.TrimRight(f.String(), "\x00")
		fieldIdx[strings.ToLower(name)] = i
	}

	geoidIdx, ok := fieldIdx["geoid"]
	if !ok {
		return nil, eris.Errorf("shapefile: no GEOID field in %s", path)
	}
	countyIdx, hasCounty := fieldIdx["countyfp"]

	log := zap.L().With(zap.String("component", "source.shapefile"))

	all := make(map[string]*geom.MultiPolygon)
	filtered := make(map[string]*geom.MultiPolygon)
	var skipped int

	attr := func(idx int) string {
		return strings.TrimSpace(strings.TrimRight(reader.Attribute(idx), "\x00"))
	}

	for reader.Next() {
		_, shape := reader.Shape()

		poly, pok := shape.(*shp.Polygon)
		if !pok {
			skipped++
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		geoid := attr(geoidIdx)
		if geoid == "" {
			skipped++
			continue
		}

		all[geoid] = mp
		if countyFIPS != "" && hasCounty && attr(countyIdx) == countyFIPS {
			filtered[geoid] = mp
		}
	}

	if skipped > 0 {
		log.Debug("shapefile: skipped records", zap.Int("skipped", skipped))
	}

	if countyFIPS != "" && len(filtered) > 0 {
		log.Info("shapefile loaded",
			zap.String("county_fips", countyFIPS),
			zap.Int("tracts", len(filtered)),
			zap.Int("total", len(all)),
		)
		return filtered, nil
	}

	log.Info("shapefile loaded", zap.Int("tracts", len(all)))
	return all, nil
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon.
// Shapefile polygons store rings as flat parts; each part becomes a
// single-ring polygon.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewLinearRingFlat(geom.XY, flat)
		poly := geom.NewPolygon(geom.XY)
		if err := poly.Push(ring); err != nil {
			zap.L().Debug("shapefile: skipping malformed ring", zap.Int32("part", i), zap.Error(err))
			continue
		}

		if err := mp.Push(poly); err != nil {
			zap.L().Debug("shapefile: skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
