package types

import (
	"sync"
)

type Set[KType comparable] struct {
	cache map[KType]Void
	// mu
	mu sync.RWMutex
}

func NewSet[KType comparable](keys ...KType) *Set[KType] {
	s := &Set[KType]{cache: map[KType]Void{}}
	for _, key := range keys {
		s.cache[key] = NULL
	}
	return s
}

// Add inserts key and reports whether it was absent.
func (s *Set[KType]) Add(key KType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[key]; exists {
		return false
	}
	s.cache[key] = NULL
	return true
}

func (s *Set[KType]) Delete(key KType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[key]; !exists {
		return false
	}
	delete(s.cache, key)
	return true
}

func (s *Set[KType]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = map[KType]Void{}
}

func (s *Set[KType]) Has(key KType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.cache[key]
	return exists
}

func (s *Set[KType]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cache)
}

func (s *Set[KType]) Keys() (list []KType) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for k := range s.cache {
		list = append(list, k)
	}

	return list
}
