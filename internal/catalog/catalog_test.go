package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableSizes(t *testing.T) {
	t.Parallel()
	tables := Default()

	assert.Len(t, tables.Ports, 3)
	assert.Len(t, tables.Cities, 9)
	assert.Len(t, tables.BeachToPort, 19)
	assert.Len(t, tables.BeachToCity, 20)
}

// Every mapping target must exist in its reference table. A violation here is
// a bug in the declared data, not a runtime condition.
func TestReferentialIntegrity(t *testing.T) {
	t.Parallel()
	tables := Default()

	for _, e := range tables.BeachToPort {
		_, ok := tables.PortBySlug(e.Target)
		assert.True(t, ok, "beach %q maps to unknown port %q", e.Beach, e.Target)
	}

	for _, e := range tables.BeachToCity {
		_, ok := tables.CityBySlug(e.Target)
		assert.True(t, ok, "beach %q maps to unknown city %q", e.Beach, e.Target)
	}
}

func TestMappingKeysAreCanonicalSlugs(t *testing.T) {
	t.Parallel()
	tables := Default()

	for _, e := range tables.BeachToCity {
		assert.Equal(t, Normalize(e.Beach), e.Beach)
	}
	for _, e := range tables.BeachToPort {
		assert.Equal(t, NormalizeBeachForTides(e.Beach), e.Beach)
	}
}

func TestCatalogShaping(t *testing.T) {
	t.Parallel()
	tables := Default()

	ports := tables.PortInfos()
	require.Len(t, ports, 3)
	assert.Equal(t, "Porto do Recife", ports[0].Name)
	assert.InDelta(t, -8.0639, ports[0].Coordinates.Lat, 1e-9)

	cities := tables.CityInfos()
	require.Len(t, cities, 9)
	assert.Equal(t, 241, cities[0].Code)

	beaches := tables.BeachCityInfos()
	require.Len(t, beaches, 20)
	assert.Equal(t, "praia-de-boa-viagem", beaches[0].Beach)
	assert.Equal(t, "Recife", beaches[0].City)

	portMap := tables.BeachPortMap()
	assert.Len(t, portMap, 19)
	assert.Equal(t, "suape", portMap["porto-de-galinhas"])
}
