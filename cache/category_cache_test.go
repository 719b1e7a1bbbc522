package category_cache

import (
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	clock := start
	now = func() time.Time { return clock }
	t.Cleanup(func() {
		now = time.Now
		Invalidate()
	})
	return &clock
}

func TestFacets_ExpireAfterTTL(t *testing.T) {
	clock := withClock(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	facets := models.CollectionFacets{Fabrics: []models.FacetOption{{Value: "Pure Silk", Count: 3}}}
	SetFacets("silk-sarees", facets)

	got, ok := GetFacets("silk-sarees")
	require.True(t, ok)
	assert.Equal(t, facets, got)

	_, ok = GetFacets("designer-kurtis")
	assert.False(t, ok)

	*clock = clock.Add(TTL)
	_, ok = GetFacets("silk-sarees")
	assert.False(t, ok)
}

func TestInvalidate_DropsEverything(t *testing.T) {
	withClock(t, time.Now())

	SetCategories([]models.CategoryWithCount{{Name: "Silk Sarees", ProductCount: 12}})
	SetFacets("silk-sarees", models.CollectionFacets{})

	_, ok := GetCategories()
	require.True(t, ok)

	Invalidate()

	_, ok = GetCategories()
	assert.False(t, ok)
	_, ok = GetFacets("silk-sarees")
	assert.False(t, ok)
}
