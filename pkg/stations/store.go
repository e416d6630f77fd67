package stations

import "sync/atomic"

// Store holds the live catalog behind an atomic pointer so a reload swaps
// the whole catalog in one step. Readers observe either the fully old or
// the fully new catalog, never a partially built one.
type Store struct {
	catalog atomic.Pointer[Catalog]
}

func NewStore() *Store {
	store := &Store{}
	store.catalog.Store(NewCatalog(nil))
	return store
}

func (s *Store) Get() *Catalog {
	return s.catalog.Load()
}

func (s *Store) Swap(catalog *Catalog) {
	s.catalog.Store(catalog)
}
