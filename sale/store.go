package sale

import "sync"

// Store persists sale records keyed by edition id.
//
// Get returns a private copy: callers mutate it freely and commit the result
// with Put, or drop it to leave the stored record untouched. This is what
// gives engine operations their all-or-nothing semantics.
type Store interface {
	// Put stores or replaces the record for an edition.
	Put(editionID uint64, rec *Record) error

	// Get retrieves a copy of the record for an edition.
	Get(editionID uint64) (*Record, error)

	// Has reports whether a record exists for an edition.
	Has(editionID uint64) (bool, error)

	// Editions returns all edition ids with a stored record.
	Editions() ([]uint64, error)
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu      sync.RWMutex
	records map[uint64]*Record
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[uint64]*Record)}
}

// Put stores or replaces the record for an edition.
func (s *MemStore) Put(editionID uint64, rec *Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[editionID] = rec.Clone()
	return nil
}

// Get retrieves a copy of the record for an edition.
func (s *MemStore) Get(editionID uint64) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[editionID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return rec.Clone(), nil
}

// Has reports whether a record exists for an edition.
func (s *MemStore) Has(editionID uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[editionID]
	return ok, nil
}

// Editions returns all edition ids with a stored record.
func (s *MemStore) Editions() ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint64, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return ids, nil
}
