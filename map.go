package strmap

import (
	"fmt"
	"iter"
	"strings"
)

// Map is an ordered map from string keys to values of type T. Keys are
// interned: the map keeps its own copy of each distinct key, made once
// when the key is first set, and queries compare against it without
// copying the caller's bytes.
//
// The zero Map is not usable; create one with New.
type Map[T any] struct {
	t tree[T]
}

// New returns an empty map.
func New[T any]() *Map[T] {
	return &Map[T]{t: newTree[T]()}
}

// Get returns the value stored under key, or the zero value of T if the
// key is not present. key is only read during the call.
func (m *Map[T]) Get(key []byte) T {
	return m.GetString(view(key))
}

// GetString is Get for a key that is already a string.
func (m *Map[T]) GetString(key string) T {
	if e := m.t.find(key); e != nil {
		return e.value
	}
	var zero T
	return zero
}

// Lookup is like Get, but also reports whether the key was present.
func (m *Map[T]) Lookup(key []byte) (T, bool) {
	return m.LookupString(view(key))
}

// LookupString is Lookup for a key that is already a string.
func (m *Map[T]) LookupString(key string) (T, bool) {
	if e := m.t.find(key); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Set stores value under key. If the key is new, the map makes its own
// copy of key's bytes and Set returns true. Otherwise only the value is
// replaced, the stored key is left alone, and Set returns false. The
// caller may reuse key's memory as soon as Set returns.
func (m *Map[T]) Set(key []byte, value T) bool {
	return m.SetString(view(key), value)
}

// SetString is Set for a key that is already a string. The key is still
// copied on insertion, so it may be a view over memory the caller will
// reuse.
func (m *Map[T]) SetString(key string, value T) bool {
	if e := m.t.find(key); e != nil {
		e.value = value
		return false
	}
	m.t.insert(key, value)
	return true
}

// Remove deletes the entry for key and reports whether there was one.
// Iterators positioned on the removed entry may only be advanced.
func (m *Map[T]) Remove(key []byte) bool {
	return m.RemoveString(view(key))
}

// RemoveString is Remove for a key that is already a string.
func (m *Map[T]) RemoveString(key string) bool {
	return m.t.remove(key)
}

// Size returns the number of entries.
func (m *Map[T]) Size() int {
	return m.t.size()
}

// Empty reports whether the map has no entries.
func (m *Map[T]) Empty() bool {
	return m.t.size() == 0
}

// Clear removes all entries.
func (m *Map[T]) Clear() {
	m.t.clear()
}

// Iter returns a mutable iterator positioned before the first entry.
func (m *Map[T]) Iter() Iterator[T] {
	return Iterator[T]{t: &m.t}
}

// ConstIter returns a read-only iterator positioned before the first
// entry.
func (m *Map[T]) ConstIter() ConstIterator[T] {
	return ConstIterator[T]{it: m.Iter()}
}

// Find returns an iterator positioned on key, and false if the key is
// not present.
func (m *Map[T]) Find(key []byte) (Iterator[T], bool) {
	return m.FindString(view(key))
}

// FindString is Find for a key that is already a string.
func (m *Map[T]) FindString(key string) (Iterator[T], bool) {
	e := m.t.find(key)
	if e == nil {
		return Iterator[T]{t: &m.t, started: true}, false
	}
	return Iterator[T]{t: &m.t, e: e, started: true}, true
}

// Each invokes f for every entry in key order until f returns false. f
// must not set new keys or remove entries; use Iter or All for that.
func (m *Map[T]) Each(f func(key string, value T) bool) {
	m.t.each(func(e *entry[T]) bool {
		return f(e.key, e.value)
	})
}

// All returns a range function over the entries in key order. The
// sequence tolerates Set and Remove between steps.
func (m *Map[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		it := m.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (m *Map[T]) Keys() []string {
	keys := make([]string, 0, m.Size())
	m.t.each(func(e *entry[T]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Clone returns an independent copy of the map. The copy shares the
// interned key strings, which are immutable, and copies values by
// assignment.
func (m *Map[T]) Clone() *Map[T] {
	m2 := New[T]()
	m.t.each(func(e *entry[T]) bool {
		m2.t.rb.Put(e.key, &entry[T]{key: e.key, value: e.value})
		return true
	})
	return m2
}

func (m *Map[T]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	m.t.each(func(e *entry[T]) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%s:%v", e.key, e.value)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
