// Package catalog defines the static indicator catalog: which indicators
// exist, the domain each belongs to, its display name, and its polarity.
// The catalog is built once at process start and never mutated afterward.
package catalog

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

// Indicator is a single measured variable belonging to exactly one domain.
type Indicator struct {
	ID             string
	DisplayName    string
	Domain         model.Domain
	HigherIsBetter bool
}

// Catalog is an immutable lookup over the indicator set.
type Catalog struct {
	domains  []model.Domain
	byDomain map[model.Domain][]string
	names    map[string]string
	higher   map[string]bool
}

// sourceDomainKeys are the domain identifiers used by the profile schema for
// ranked domains, in the order their rank/var columns appear. Demographics
// is descriptive only and carries no rank columns.
var sourceDomainKeys = []string{
	"Socioeconomic",
	"Housing",
	"Transportation",
	"TransportationSafety",
	"Environmental",
	"PublicHealth",
}

// publicDomainNames renames source-schema domain keys to the public-facing
// taxonomy. Every ranked source key must appear here; Load-time validation
// in RankedSourceDomains depends on it.
var publicDomainNames = map[string]model.Domain{
	"Socioeconomic":        model.DomainSocioeconomic,
	"Housing":              model.DomainHousing,
	"Transportation":       model.DomainMobility,
	"TransportationSafety": model.DomainTransportationSafety,
	"Environmental":        model.DomainEnvironmental,
	"PublicHealth":         model.DomainPublicHealth,
}

// PublicDomain maps a source-schema domain key to its public display name.
// Unknown keys are returned unchanged so unexpected schema additions surface
// in output rather than vanishing.
func PublicDomain(sourceKey string) model.Domain {
	if d, ok := publicDomainNames[sourceKey]; ok {
		return d
	}
	return model.Domain(sourceKey)
}

// RankedSourceDomains returns the six source-schema domain keys that carry
// rank and top-indicator columns, in schema order.
func RankedSourceDomains() []string {
	return sourceDomainKeys
}

// Default returns the full built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		byDomain: make(map[model.Domain][]string),
		names:    make(map[string]string),
		higher:   make(map[string]bool),
	}
	for _, ind := range indicators {
		if _, seen := c.byDomain[ind.Domain]; !seen {
			c.domains = append(c.domains, ind.Domain)
		}
		c.byDomain[ind.Domain] = append(c.byDomain[ind.Domain], ind.ID)
		c.names[ind.ID] = ind.DisplayName
		if ind.HigherIsBetter {
			c.higher[ind.ID] = true
		}
	}
	return c
}

// Domains returns the domain list in catalog order.
func (c *Catalog) Domains() []model.Domain {
	return c.domains
}

// IndicatorsFor returns the ordered indicator ids for a domain.
func (c *Catalog) IndicatorsFor(d model.Domain) []string {
	return c.byDomain[d]
}

// DisplayName returns the display name for an indicator id. Ids absent from
// the catalog fall back to the raw id with underscores replaced by spaces.
func (c *Catalog) DisplayName(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return strings.ReplaceAll(id, "_", " ")
}

// HigherIsBetter reports whether higher values of the indicator are
// favorable.
func (c *Catalog) HigherIsBetter(id string) bool {
	return c.higher[id]
}

// Has reports whether the indicator id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.names[id]
	return ok
}

// Names returns the id -> display name mapping for all indicators.
func (c *Catalog) Names() map[string]string {
	out := make(map[string]string, len(c.names))
	for id, name := range c.names {
		out[id] = name
	}
	return out
}

// Filter returns a catalog restricted to indicators for which present
// returns true, preserving domain and indicator order. Domains left with no
// indicators are kept with an empty list so the artifact still renders their
// tab.
func (c *Catalog) Filter(present func(id string) bool) *Catalog {
	out := &Catalog{
		domains:  c.domains,
		byDomain: make(map[model.Domain][]string, len(c.byDomain)),
		names:    c.names,
		higher:   c.higher,
	}
	for _, d := range c.domains {
		var kept []string
		for _, id := range c.byDomain[d] {
			if present(id) {
				kept = append(kept, id)
			}
		}
		out.byDomain[d] = kept
		zap.L().Debug("catalog: filtered domain",
			zap.String("domain", string(d)),
			zap.Int("kept", len(kept)),
			zap.Int("total", len(c.byDomain[d])),
		)
	}
	return out
}

// overrideFile is the YAML shape for catalog overrides.
type overrideFile struct {
	Names          map[string]string `yaml:"names"`
	HigherIsBetter []string          `yaml:"higher_is_better"`
}

// ApplyOverrides loads a YAML override file and returns a catalog with
// display names and the higher-is-better set replaced where specified.
func (c *Catalog) ApplyOverrides(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read overrides %s", path)
	}

	var ov overrideFile
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, eris.Wrap(err, "catalog: parse overrides")
	}

	out := &Catalog{
		domains:  c.domains,
		byDomain: c.byDomain,
		names:    make(map[string]string, len(c.names)),
		higher:   c.higher,
	}
	for id, name := range c.names {
		out.names[id] = name
	}
	for id, name := range ov.Names {
		if !c.Has(id) {
			return nil, eris.Errorf("catalog: override names unknown indicator %q", id)
		}
		out.names[id] = name
	}

	if ov.HigherIsBetter != nil {
		out.higher = make(map[string]bool, len(ov.HigherIsBetter))
		for _, id := range ov.HigherIsBetter {
			if !c.Has(id) {
				return nil, eris.Errorf("catalog: override higher_is_better unknown indicator %q", id)
			}
			out.higher[id] = true
		}
	}

	zap.L().Info("catalog: overrides applied",
		zap.String("path", path),
		zap.Int("names", len(ov.Names)),
		zap.Int("higher_is_better", len(ov.HigherIsBetter)),
	)
	return out, nil
}
