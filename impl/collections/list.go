package collections

// List is an insertion ordered sequence with constant time positional access.
// It does not deduplicate.
type List[T any] struct {
	items []T
}

func NewList[T any](capacity int) *List[T] {
	return &List[T]{items: make([]T, 0, capacity)}
}

func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Each calls fn for every item in order until fn returns false.
func (l *List[T]) Each(fn func(T) bool) {
	for _, item := range l.items {
		if !fn(item) {
			return
		}
	}
}

// View returns a read-only view sharing the list's storage.
func (l *List[T]) View() ListView[T] {
	return ListView[T]{list: l}
}

// ListView exposes a List without its mutators.
type ListView[T any] struct {
	list *List[T]
}

func (v ListView[T]) Len() int {
	if v.list == nil {
		return 0
	}
	return v.list.Len()
}

func (v ListView[T]) At(i int) T {
	return v.list.At(i)
}

func (v ListView[T]) Each(fn func(T) bool) {
	if v.list != nil {
		v.list.Each(fn)
	}
}

// Values returns a copy of the items.
func (v ListView[T]) Values() []T {
	if v.list == nil {
		return nil
	}
	values := make([]T, len(v.list.items))
	copy(values, v.list.items)
	return values
}
