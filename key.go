package strmap

import (
	"strings"
	"unsafe"
)

// view returns a string over b's bytes without copying them. The result
// is only for comparisons within the calling operation; it must never be
// stored in the tree or handed back to the caller, since b may change.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// intern makes the one durable copy of a key. The result shares no
// memory with k, even when k is itself a view over caller bytes.
func intern(k string) string {
	return strings.Clone(k)
}

// compareKeys orders keys by their bytes, which for Go strings is the
// same as strings.Compare.
func compareKeys(a, b string) int {
	return strings.Compare(a, b)
}
