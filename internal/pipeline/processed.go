package pipeline

import "sync"

// ProcessedSet records order ids accepted by validation so replays can
// be rejected. It grows monotonically for the lifetime of the process
// and is never pruned; an id stays in the set even when a later stage
// fails the order.
type ProcessedSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewProcessedSet returns an empty set.
func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{ids: make(map[string]struct{})}
}

// Contains reports whether id has been accepted before.
func (s *ProcessedSet) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Add marks id as accepted.
func (s *ProcessedSet) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

// Len returns the number of accepted ids.
func (s *ProcessedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
