/*
Package strmap provides an ordered map with string keys that can be
queried with a []byte without building a string for the lookup.

A map[string]T forces the caller to produce a string for every lookup,
which usually means copying bytes that are already sitting in a
request buffer. A strmap.Map interns its keys instead: the first Set of
a key copies it into storage owned by the map, and every later Get,
Set or Remove compares the caller's bytes in place.

	m := strmap.New[string]()
	m.Set([]byte("Content-Type"), "text/html")
	ct := m.Get(buf[start:end])

Missing keys are not errors. Get returns the zero value of T, Lookup
also reports presence, and Remove reports whether anything was removed.

Ordering

Entries are kept in a red-black tree ordered by the bytes of the key, so
iteration is always in ascending byte order no matter what order the
keys were set in. The tree holds a pointer to each entry, and an entry
never moves once created, which lets iterator positions survive
insertions and removals of other keys.

Keys handed out by Key, Keys, Each and All are strings sharing the
map's own copy of the key bytes. Nothing is copied to produce them, and
they stay valid after the entry is removed.

Concurrency

A Map does no locking. Any number of goroutines may call Get, Lookup and
iterate at the same time, but only while nothing is calling Set, Remove,
Clear or mutating values through an Iterator. Callers that need to mix
the two must guard the map themselves, e.g. with a sync.RWMutex.
*/
package strmap
