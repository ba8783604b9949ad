package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByType(t *testing.T) {
	for _, unitType := range Types() {
		spec, ok := ByType(unitType)
		require.True(t, ok, "catalog lookup for %s", unitType)
		assert.Equal(t, unitType, spec.Type)
		assert.NotEmpty(t, spec.Name)
		assert.Positive(t, spec.Attack)
		assert.Positive(t, spec.Health)
	}
}

func TestByTypeUnknown(t *testing.T) {
	_, ok := ByType(UnitType("cavalry"))
	assert.False(t, ok)
}

func TestAllIsCopy(t *testing.T) {
	first := All()
	first[0].Attack = -1

	again := All()
	assert.NotEqual(t, -1, again[0].Attack, "catalog must be immutable")
}

func TestCatalogIsClosed(t *testing.T) {
	assert.Len(t, All(), 4)
	assert.Equal(t, []UnitType{Infantry, Tank, Artillery, Aircraft}, Types())
}
