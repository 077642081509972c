package strmap

import (
	"fmt"
)

// DiffFunc is called by Diff for each difference. added && removed
// signifies an entry whose value changed.
type DiffFunc[T any] func(added, removed bool, key string, addedValue, removedValue T) (keepGoing bool, err error)

// Diff invokes f for every entry that is different from oldMap, in key
// order. Values are compared with equal. The iteration stops if f
// returns keepGoing==false or an error. A nil oldMap is treated as empty.
// Neither map may be modified while Diff runs.
func (m *Map[T]) Diff(oldMap *Map[T], equal func(a, b T) bool, f DiffFunc[T]) error {
	var zero T
	newEntries := m.entries()
	var oldEntries []*entry[T]
	if oldMap != nil {
		oldEntries = oldMap.entries()
	}
	i, j := 0, 0
	for i < len(newEntries) || j < len(oldEntries) {
		var keepGoing bool
		var err error
		switch {
		case j == len(oldEntries) ||
			i < len(newEntries) && compareKeys(newEntries[i].key, oldEntries[j].key) < 0:
			n := newEntries[i]
			keepGoing, err = f(true, false, n.key, n.value, zero)
			i++
		case i == len(newEntries) ||
			compareKeys(newEntries[i].key, oldEntries[j].key) > 0:
			o := oldEntries[j]
			keepGoing, err = f(false, true, o.key, zero, o.value)
			j++
		default:
			n, o := newEntries[i], oldEntries[j]
			i++
			j++
			if equal(n.value, o.value) {
				continue
			}
			keepGoing, err = f(true, true, n.key, n.value, o.value)
		}
		if err != nil {
			return fmt.Errorf("callback: %w", err)
		}
		if !keepGoing {
			return nil
		}
	}
	return nil
}

// DiffComparable is Diff for value types that can be compared with ==.
func DiffComparable[T comparable](m, oldMap *Map[T], f DiffFunc[T]) error {
	return m.Diff(oldMap, func(a, b T) bool { return a == b }, f)
}

func (m *Map[T]) entries() []*entry[T] {
	entries := make([]*entry[T], 0, m.Size())
	m.t.each(func(e *entry[T]) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}
