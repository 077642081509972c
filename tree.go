package strmap

import (
	"fmt"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// entry is the single owner of a key's bytes. The tree refers to it by
// pointer, so an entry stays put while the tree rotates or moves node
// payloads around during deletions.
type entry[T any] struct {
	key   string
	value T
}

// tree is a red-black tree of owned key -> *entry. Lookups walk the
// nodes directly instead of going through rbt.Tree.Get, so a query key
// never gets boxed into an interface.
type tree[T any] struct {
	rb *rbt.Tree
}

func newTree[T any]() tree[T] {
	return tree[T]{rb: rbt.NewWith(utils.StringComparator)}
}

func (t *tree[T]) node(k string) *rbt.Node {
	node := t.rb.Root
	for node != nil {
		c := compareKeys(k, t.toEntry(node.Value).key)
		switch {
		case c < 0:
			node = node.Left
		case c > 0:
			node = node.Right
		default:
			return node
		}
	}
	return nil
}

func (t *tree[T]) find(k string) *entry[T] {
	if node := t.node(k); node != nil {
		return t.toEntry(node.Value)
	}
	return nil
}

// insert adds a new entry for k, which must not already be present. This
// is the only place key bytes are copied.
func (t *tree[T]) insert(k string, value T) *entry[T] {
	e := &entry[T]{key: intern(k), value: value}
	t.rb.Put(e.key, e)
	return e
}

func (t *tree[T]) remove(k string) bool {
	node := t.node(k)
	if node == nil {
		return false
	}
	// node.Key already holds the interned key as an interface value.
	t.rb.Remove(node.Key)
	return true
}

func (t *tree[T]) first() *entry[T] {
	if node := t.rb.Left(); node != nil {
		return t.toEntry(node.Value)
	}
	return nil
}

// after returns the entry with the smallest key strictly greater than k,
// whether or not k itself is present.
func (t *tree[T]) after(k string) *entry[T] {
	var next *entry[T]
	node := t.rb.Root
	for node != nil {
		e := t.toEntry(node.Value)
		if compareKeys(e.key, k) > 0 {
			next = e
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return next
}

func (t *tree[T]) size() int {
	return t.rb.Size()
}

func (t *tree[T]) clear() {
	t.rb.Clear()
}

// each visits entries in order using the tree's own iterator. f must not
// insert or remove entries.
func (t *tree[T]) each(f func(*entry[T]) bool) {
	iterator := t.rb.Iterator()
	for iterator.Next() {
		if !f(t.toEntry(iterator.Value())) {
			return
		}
	}
}

func (*tree[T]) toEntry(value any) *entry[T] {
	e, ok := value.(*entry[T])
	if !ok {
		panic(fmt.Errorf("expect %T, got %T from tree", (*entry[T])(nil), value))
	}
	return e
}
