package content

import "sync"

// Store is an id-keyed collection of records that remembers insertion order.
// Entries are only ever upserted or cleared wholesale.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*Record
}

func NewStore() *Store {
	return &Store{records: make(map[string]*Record)}
}

// Set upserts r under id. The last write wins; an overwritten record keeps
// the position of its first insertion.
func (s *Store) Set(id string, r *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		s.order = append(s.order, id)
	}
	s.records[id] = r
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.records = make(map[string]*Record)
}

func (s *Store) Get(id string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// All returns a snapshot of the records in insertion order.
func (s *Store) All() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// ByKind returns the records of kind k in insertion order.
func (s *Store) ByKind(k Kind) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Record
	for _, id := range s.order {
		if r := s.records[id]; r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}
