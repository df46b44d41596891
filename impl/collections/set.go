package collections

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Set is a hash set that remembers insertion order. It can only be walked
// forward; there is no positional access.
type Set[T comparable] struct {
	items *linkedhashset.Set
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: linkedhashset.New()}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was not already present.
func (s *Set[T]) Add(item T) bool {
	if s.items.Contains(item) {
		return false
	}
	s.items.Add(item)
	return true
}

func (s *Set[T]) Contains(item T) bool {
	return s.items.Contains(item)
}

func (s *Set[T]) Len() int {
	return s.items.Size()
}

func (s *Set[T]) Empty() bool {
	return s.items.Empty()
}

// Each calls fn for every item in insertion order until fn returns false.
func (s *Set[T]) Each(fn func(T) bool) {
	it := s.items.Iterator()
	for it.Next() {
		if !fn(it.Value().(T)) {
			return
		}
	}
}

func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.items.Size())
	s.Each(func(item T) bool {
		values = append(values, item)
		return true
	})
	return values
}

func (s *Set[T]) View() SetView[T] {
	return SetView[T]{set: s}
}

// SetView exposes a Set without its mutators.
type SetView[T comparable] struct {
	set *Set[T]
}

func (v SetView[T]) Len() int {
	if v.set == nil {
		return 0
	}
	return v.set.Len()
}

func (v SetView[T]) Contains(item T) bool {
	return v.set != nil && v.set.Contains(item)
}

func (v SetView[T]) Each(fn func(T) bool) {
	if v.set != nil {
		v.set.Each(fn)
	}
}

func (v SetView[T]) Values() []T {
	if v.set == nil {
		return nil
	}
	return v.set.Values()
}
