package catalogapi

import (
	stdsync "sync"

	"esim-store/database"
	"esim-store/internal/domain/catalog"
	"esim-store/internal/search"
)

// The search engine holds an immutable category snapshot, so it is built
// once per process and rebuilt only when a sync run changes the catalog.
var searchCache struct {
	mu     stdsync.RWMutex
	engine *search.Engine
}

func searchEngine() (*search.Engine, error) {
	searchCache.mu.RLock()
	if e := searchCache.engine; e != nil {
		searchCache.mu.RUnlock()
		return e, nil
	}
	searchCache.mu.RUnlock()

	var categories []catalog.Category
	if err := categoriesQuery(database.DB).Find(&categories).Error; err != nil {
		return nil, err
	}

	searchCache.mu.Lock()
	defer searchCache.mu.Unlock()
	if searchCache.engine == nil {
		searchCache.engine = search.NewEngine(categories)
	}
	return searchCache.engine, nil
}

// InvalidateSearchEngine drops the snapshot; the next search rebuilds it.
func InvalidateSearchEngine() {
	searchCache.mu.Lock()
	searchCache.engine = nil
	searchCache.mu.Unlock()
}
