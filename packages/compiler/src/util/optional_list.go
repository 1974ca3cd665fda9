package util

// OptionalList is a list that is either Present (one or more items) or Empty.
// Emitters use the variant to write "no elements" as null instead of [].
type OptionalList[T any] struct {
	items []T
}

// NewOptionalList builds an OptionalList from a slice. The slice is copied.
func NewOptionalList[T any](items []T) OptionalList[T] {
	if len(items) == 0 {
		return OptionalList[T]{}
	}
	copied := make([]T, len(items))
	copy(copied, items)
	return OptionalList[T]{items: copied}
}

// EmptyList returns the Empty variant
func EmptyList[T any]() OptionalList[T] {
	return OptionalList[T]{}
}

// IsPresent reports whether the list has at least one item
func (l OptionalList[T]) IsPresent() bool {
	return len(l.items) > 0
}

// IsEmpty reports whether the list has no items
func (l OptionalList[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Len returns the number of items
func (l OptionalList[T]) Len() int {
	return len(l.items)
}

// Items returns the items, or nil for the Empty variant
func (l OptionalList[T]) Items() []T {
	if len(l.items) == 0 {
		return nil
	}
	return l.items
}

// Nth returns the item at index i, if any
func (l OptionalList[T]) Nth(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

// Filter keeps the items matching pred. Filtering down to zero items yields Empty.
func (l OptionalList[T]) Filter(pred func(T) bool) OptionalList[T] {
	var out []T
	for _, item := range l.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return OptionalList[T]{items: out}
}

// MapList maps every item. A Present list stays Present.
func MapList[T, U any](l OptionalList[T], f func(T) U) OptionalList[U] {
	if len(l.items) == 0 {
		return OptionalList[U]{}
	}
	out := make([]U, len(l.items))
	for i, item := range l.items {
		out[i] = f(item)
	}
	return OptionalList[U]{items: out}
}
