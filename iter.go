package strmap

// Iterator is a position in a Map that allows the value at that position
// to be changed. The key cannot be changed through it.
//
//	it := m.Iter()
//	for it.Next() {
//		*it.Ptr() += 1
//	}
//
// A position refers to an entry, not to a tree node, so it stays valid
// while other keys are set or removed. If the entry it refers to is
// removed, the only valid operation left is Next, which moves to the
// entry following the removed key.
type Iterator[T any] struct {
	t       *tree[T]
	e       *entry[T]
	started bool
}

// Next moves to the following entry and reports whether there is one. A
// new iterator starts before the first entry.
func (it *Iterator[T]) Next() bool {
	switch {
	case !it.started:
		it.started = true
		it.e = it.t.first()
	case it.e != nil:
		it.e = it.t.after(it.e.key)
	}
	return it.e != nil
}

// Reset moves the iterator back before the first entry.
func (it *Iterator[T]) Reset() {
	it.started = false
	it.e = nil
}

// Valid reports whether the iterator is positioned on an entry.
func (it *Iterator[T]) Valid() bool {
	return it.e != nil
}

// Key returns the key at the current position. It shares the map's copy
// of the key bytes.
func (it *Iterator[T]) Key() string {
	return it.e.key
}

// Value returns a copy of the value at the current position.
func (it *Iterator[T]) Value() T {
	return it.e.value
}

// Ptr returns a pointer to the value at the current position. It remains
// valid for as long as the entry is in the map.
func (it *Iterator[T]) Ptr() *T {
	return &it.e.value
}

// SetValue replaces the value at the current position.
func (it *Iterator[T]) SetValue(value T) {
	it.e.value = value
}

// Const returns a read-only iterator at the same position. The two
// iterators advance independently afterwards.
func (it *Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: *it}
}

// ConstIterator is a read-only position in a Map. It follows the same
// validity rules as Iterator. There is no way to get an Iterator back
// from it.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Next moves to the following entry and reports whether there is one.
func (c *ConstIterator[T]) Next() bool {
	return c.it.Next()
}

// Reset moves the iterator back before the first entry.
func (c *ConstIterator[T]) Reset() {
	c.it.Reset()
}

// Valid reports whether the iterator is positioned on an entry.
func (c *ConstIterator[T]) Valid() bool {
	return c.it.Valid()
}

// Key returns the key at the current position.
func (c *ConstIterator[T]) Key() string {
	return c.it.Key()
}

// Value returns a copy of the value at the current position.
func (c *ConstIterator[T]) Value() T {
	return c.it.Value()
}
