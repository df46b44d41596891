package sampling

import (
	"errors"
	"golang.org/x/exp/slices"
)

var ErrNilPredicate = errors.New("sampling: a predicate to filter elements is required")

// Collection is a finite container that can be walked forward.
type Collection[T any] interface {
	Len() int
	Each(fn func(T) bool)
}

// Indexed is a Collection with constant time positional access.
type Indexed[T any] interface {
	Collection[T]
	At(i int) T
}

// Intner draws integers in [0, max).
type Intner interface {
	Intn(max int) int
}

func all[T any](T) bool {
	return true
}

// Sample picks up to count distinct elements of source.
//
// When count covers the whole source every element is returned in source
// order. Otherwise count positions are drawn independently, so repeated draws
// can leave the result with fewer than count elements.
func Sample[T comparable](source Collection[T], count int, rnd Intner) []T {
	return sample(source, count, rnd, all[T])
}

// SampleFunc is like Sample but only picks elements satisfying predicate.
func SampleFunc[T comparable](source Collection[T], count int, rnd Intner, predicate func(T) bool) ([]T, error) {
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	return sample(source, count, rnd, predicate), nil
}

func sample[T comparable](source Collection[T], count int, rnd Intner, predicate func(T) bool) []T {
	size := source.Len()
	if count <= 0 || size == 0 {
		return []T{}
	}

	if count >= size {
		return filter(source, predicate)
	}

	if indexed, ok := source.(Indexed[T]); ok {
		return fromIndexed(indexed, count, rnd, predicate)
	}
	return fromCollection(source, count, rnd, predicate)
}

func filter[T any](source Collection[T], predicate func(T) bool) []T {
	selected := make([]T, 0, source.Len())
	source.Each(func(item T) bool {
		if predicate(item) {
			selected = append(selected, item)
		}
		return true
	})
	return selected
}

func fromIndexed[T comparable](source Indexed[T], count int, rnd Intner, predicate func(T) bool) []T {
	seen := make(map[T]struct{}, count)
	selected := make([]T, 0, count)
	for i := 0; i < count; i++ {
		item := source.At(rnd.Intn(source.Len()))
		if !predicate(item) {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		selected = append(selected, item)
	}
	return selected
}

// fromCollection walks source once, picking the matching elements whose
// position among matching elements equals one of the drawn targets.
func fromCollection[T any](source Collection[T], count int, rnd Intner, predicate func(T) bool) []T {
	targets := make([]int, count)
	for i := range targets {
		targets[i] = rnd.Intn(source.Len())
	}
	slices.Sort(targets)
	targets = slices.Compact(targets)

	selected := make([]T, 0, len(targets))
	next, pos := 0, 0
	source.Each(func(item T) bool {
		if !predicate(item) {
			return true
		}
		if pos == targets[next] {
			selected = append(selected, item)
			next++
		}
		pos++
		return next < len(targets)
	})
	return selected
}
