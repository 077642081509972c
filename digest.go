package strmap

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

var defaultMarshal = json.Marshal

// Digest is a BLAKE2b-256 hash of a map's contents.
type Digest [32]byte

func (d Digest) String() string {
	return base64.RawURLEncoding.EncodeToString(d[:])
}

// Digest hashes the map's entries in key order. Maps with equal keys and
// equally-marshalled values have equal digests, however they were built.
// Values are marshalled with marshal, or JSON if marshal is nil.
func (m *Map[T]) Digest(marshal func(any) ([]byte, error)) (Digest, error) {
	if marshal == nil {
		marshal = defaultMarshal
	}
	h := blake2b.New256()
	buf := appendLength(nil, m.Size())
	var err error
	m.t.each(func(e *entry[T]) bool {
		var body []byte
		body, err = marshal(e.value)
		if err != nil {
			err = fmt.Errorf("marshal value for %q: %w", e.key, err)
			return false
		}
		buf = appendString(buf, e.key)
		buf = appendBytes(buf, body)
		h.Write(buf)
		buf = buf[:0]
		return true
	})
	if err != nil {
		return Digest{}, err
	}
	h.Write(buf)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
