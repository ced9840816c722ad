package order

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"sort"
	"sync"
)

// ActiveStore owns the single in-memory collection the whole service
// operates on, the way the active datasource owns the database connection.
var ActiveStore = NewStore()

// Store holds the ordered change-order collection and the project settings.
// Mutations are serialized behind one mutex, so a command either commits as
// a whole or leaves the state untouched.
type Store struct {
	mu       sync.RWMutex
	orders   []domain.ChangeOrder
	settings domain.AppSettings
}

func NewStore() *Store {
	return &Store{settings: domain.DefaultAppSettings()}
}

// Create requires the unsaved sentinel id 0, assigns max(existing)+1 and
// re-sorts the collection descending by id.
func (s *Store) Create(o domain.ChangeOrder) (domain.ChangeOrder, error) {
	if o.ID != 0 {
		return domain.ChangeOrder{}, bizerror.ErrInvalidState
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxId int64
	for i := range s.orders {
		if s.orders[i].ID > maxId {
			maxId = s.orders[i].ID
		}
	}
	o.ID = maxId + 1
	s.orders = append(s.orders, o)
	sort.SliceStable(s.orders, func(i, j int) bool {
		return s.orders[i].ID > s.orders[j].ID
	})
	return o, nil
}

// Update replaces the entry with the same id wholesale and keeps the
// collection order as-is.
func (s *Store) Update(o domain.ChangeOrder) (domain.ChangeOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			return o, nil
		}
	}
	return domain.ChangeOrder{}, bizerror.ErrNotFound
}

// Delete removes every entry whose id is in the set; absent ids are ignored.
func (s *Store) Delete(ids map[int64]bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	removed := 0
	for _, o := range s.orders {
		if ids[o.ID] {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.orders = kept
	return removed
}

// Renumber re-sorts ascending by DateRequested (stable on ties) and
// reassigns ids 1..N. All prior ids are discarded. A no-op on an empty
// collection.
func (s *Store) Renumber() []domain.ChangeOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.orders) == 0 {
		return nil
	}
	sort.SliceStable(s.orders, func(i, j int) bool {
		return s.orders[i].DateRequested.Before(s.orders[j].DateRequested.Time)
	})
	for i := range s.orders {
		s.orders[i].ID = int64(i + 1)
	}
	return s.snapshotLocked()
}

// ReplaceAll atomically swaps the collection and the settings. Callers are
// responsible for structural validation; individual field invariants are
// deliberately not checked here.
func (s *Store) ReplaceAll(orders []domain.ChangeOrder, settings domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]domain.ChangeOrder{}, orders...)
	s.settings = settings.Copy()
}

func (s *Store) Find(id int64) (domain.ChangeOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], true
		}
	}
	return domain.ChangeOrder{}, false
}

// Orders returns a copy of the collection in its current order.
func (s *Store) Orders() []domain.ChangeOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Copy()
}

func (s *Store) SaveSettings(settings domain.AppSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings.Copy()
}

func (s *Store) snapshotLocked() []domain.ChangeOrder {
	return append([]domain.ChangeOrder{}, s.orders...)
}
