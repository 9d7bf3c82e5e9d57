package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grit-analytics/opportunity-map/internal/model"
)

func TestDefault_DomainOrder(t *testing.T) {
	c := Default()

	assert.Equal(t, []model.Domain{
		model.DomainSocioeconomic,
		model.DomainHousing,
		model.DomainMobility,
		model.DomainTransportationSafety,
		model.DomainEnvironmental,
		model.DomainPublicHealth,
		model.DomainDemographics,
	}, c.Domains())
}

func TestDisplayName(t *testing.T) {
	c := Default()

	assert.Equal(t, "Unemployment Rate", c.DisplayName("UNEMPPCT"))
	// Unknown ids fall back to underscore replacement.
	assert.Equal(t, "Some New Column", c.DisplayName("Some_New_Column"))
}

func TestHigherIsBetter(t *testing.T) {
	c := Default()

	assert.True(t, c.HigherIsBetter("percent_homeowners"))
	assert.True(t, c.HigherIsBetter("LIFEEXPPCT"))
	assert.False(t, c.HigherIsBetter("LOWINCPCT"))
	assert.False(t, c.HigherIsBetter("nonexistent"))
}

func TestPublicDomain(t *testing.T) {
	assert.Equal(t, model.DomainMobility, PublicDomain("Transportation"))
	assert.Equal(t, model.DomainTransportationSafety, PublicDomain("TransportationSafety"))
	assert.Equal(t, model.DomainPublicHealth, PublicDomain("PublicHealth"))
	assert.Equal(t, model.DomainHousing, PublicDomain("Housing"))
	// Unknown keys pass through so schema drift stays visible.
	assert.Equal(t, model.Domain("Wildlife"), PublicDomain("Wildlife"))
}

func TestRankedSourceDomains_AllRenamable(t *testing.T) {
	for _, key := range RankedSourceDomains() {
		assert.NotEqual(t, model.Domain(""), PublicDomain(key))
	}
	assert.Len(t, RankedSourceDomains(), 6)
}

func TestFilter(t *testing.T) {
	c := Default()
	present := map[string]bool{"UNEMPPCT": true, "LOWINCPCT": true, "PM25": true}

	f := c.Filter(func(id string) bool { return present[id] })

	assert.Equal(t, []string{"LOWINCPCT", "UNEMPPCT"}, f.IndicatorsFor(model.DomainSocioeconomic))
	assert.Equal(t, []string{"PM25"}, f.IndicatorsFor(model.DomainEnvironmental))
	assert.Empty(t, f.IndicatorsFor(model.DomainHousing))
	// Domain list is unchanged even when a domain loses all indicators.
	assert.Len(t, f.Domains(), 7)
	// Names survive filtering.
	assert.Equal(t, "Unemployment Rate", f.DisplayName("UNEMPPCT"))
}

func TestApplyOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := "names:\n  UNEMPPCT: Jobless Rate\nhigher_is_better:\n  - LIFEEXPPCT\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Default().ApplyOverrides(path)
	require.NoError(t, err)

	assert.Equal(t, "Jobless Rate", c.DisplayName("UNEMPPCT"))
	assert.True(t, c.HigherIsBetter("LIFEEXPPCT"))
	// Replaced wholesale: percent_homeowners is no longer in the set.
	assert.False(t, c.HigherIsBetter("percent_homeowners"))
}

func TestApplyOverrides_UnknownIndicator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("names:\n  BOGUS: Nope\n"), 0o644))

	_, err := Default().ApplyOverrides(path)
	assert.Error(t, err)
}

func TestApplyOverrides_MissingFile(t *testing.T) {
	_, err := Default().ApplyOverrides("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}
