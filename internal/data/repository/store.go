package repository

import (
	"sync"
)

// orderedStore is an id index that remembers insertion order.
type orderedStore[T any] struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]T
}

func newOrderedStore[T any]() *orderedStore[T] {
	return &orderedStore[T]{items: make(map[string]T)}
}

// insert adds v under id and reports false if the id is taken.
func (s *orderedStore[T]) insert(id string, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = v
	s.ids = append(s.ids, id)
	return true
}

func (s *orderedStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	return v, ok
}

// update replaces the stored value with fn's result while holding the write
// lock. Stored values are never mutated in place, so readers may copy what
// get and filter return without holding the lock.
func (s *orderedStore[T]) update(id string, fn func(T) (T, error)) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	if !ok {
		return v, false, nil
	}
	next, err := fn(v)
	if err != nil {
		return v, true, err
	}
	s.items[id] = next
	return next, true, nil
}

func (s *orderedStore[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// filter returns matching values in insertion order, skipping offset matches
// and stopping after limit matches. A limit <= 0 means no limit.
func (s *orderedStore[T]) filter(keep func(T) bool, offset, limit int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range s.ids {
		v := s.items[id]
		if keep != nil && !keep(v) {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
