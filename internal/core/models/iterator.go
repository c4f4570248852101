package models

// Iterator walks a snapshot of items.
// Close releases the snapshot; Next returns false afterwards.
type Iterator[T any] interface {
	Next() bool
	Item() T
	Error() error
	Close() error
	ToSlice() []T
	Count() int
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

// NewSliceIterator iterates over a copy of items.
func NewSliceIterator[T any](items []T) Iterator[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &sliceIterator[T]{items: cp, pos: -1}
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator[T]) Item() T {
	if it.pos < 0 || it.pos >= len(it.items) {
		var zero T
		return zero
	}
	return it.items[it.pos]
}

func (it *sliceIterator[T]) Error() error { return nil }

func (it *sliceIterator[T]) Close() error {
	it.items = nil
	it.pos = 0
	return nil
}

func (it *sliceIterator[T]) ToSlice() []T {
	out := make([]T, len(it.items))
	copy(out, it.items)
	return out
}

func (it *sliceIterator[T]) Count() int { return len(it.items) }
