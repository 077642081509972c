package strmap

import (
	"fmt"
)

func ExampleMap_Set() {
	m := New[string]()
	fmt.Println(m.Set([]byte("Content-Type"), "text/html"))
	fmt.Println(m.Set([]byte("Content-Type"), "application/json"))
	fmt.Println(m.Get([]byte("Content-Type")), m.Size())
	fmt.Printf("%q\n", m.Get([]byte("X-Foo")))
	// Output:
	// true
	// false
	// application/json 1
	// ""
}

func ExampleMap_Iter() {
	m := New[int]()
	m.SetString("a", 1)
	m.SetString("c", 3)
	m.SetString("b", 2)
	it := m.Iter()
	for it.Next() {
		*it.Ptr() *= 10
	}
	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// a 10
	// b 20
	// c 30
}

func ExampleMap_Diff() {
	v1 := New[string]()
	v1.SetString("0", "foo")
	v1.SetString("100", "asdf")
	v2 := v1.Clone()
	v2.SetString("0", "bar")
	v2.RemoveString("100")
	v2.SetString("200", "qwerty")
	_ = DiffComparable(v2, v1, func(added, removed bool, key string, addedValue, removedValue string) (bool, error) {
		if added && removed {
			fmt.Printf("changed '%v'   from '%v' to '%v'\n", key, removedValue, addedValue)
		} else if removed {
			fmt.Printf("removed '%v' value '%v'\n", key, removedValue)
		} else if added {
			fmt.Printf("added   '%v' value '%v'\n", key, addedValue)
		}
		return true, nil
	})
	// Output:
	// changed '0'   from 'foo' to 'bar'
	// removed '100' value 'asdf'
	// added   '200' value 'qwerty'
}

func ExampleMap_Size() {
	m := New[string]()
	m.SetString("0", "zero")
	m.SetString("1", "one")
	fmt.Println(m.Size())
	// Output:
	// 2
}
