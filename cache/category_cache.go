package category_cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const TTL = 5 * time.Minute

var now = time.Now

// ── Active categories with product counts ───────────────────────────────────
// Backs GET /api/v1/store/categories.

type listEntry struct {
	data      []models.CategoryWithCount
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetCategories() ([]models.CategoryWithCount, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && now().Sub(listCache.fetchedAt) < TTL {
		return listCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.CategoryWithCount) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{data: data, fetchedAt: now()}
}

// ── Collection facets, per category slug ────────────────────────────────────

type facetEntry struct {
	facets    models.CollectionFacets
	fetchedAt time.Time
}

var (
	facetMu    sync.RWMutex
	facetCache = map[string]facetEntry{}
)

func GetFacets(slug string) (models.CollectionFacets, bool) {
	facetMu.RLock()
	defer facetMu.RUnlock()
	e, ok := facetCache[slug]
	if ok && now().Sub(e.fetchedAt) < TTL {
		return e.facets, true
	}
	return models.CollectionFacets{}, false
}

func SetFacets(slug string, facets models.CollectionFacets) {
	facetMu.Lock()
	defer facetMu.Unlock()
	facetCache[slug] = facetEntry{facets: facets, fetchedAt: now()}
}

// ── Invalidate everything (the seeder calls this after writing) ─────────────

func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()

	facetMu.Lock()
	facetCache = map[string]facetEntry{}
	facetMu.Unlock()
}
