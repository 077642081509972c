package strmap

import (
	"encoding/binary"
)

func appendLength(buf []byte, n int) []byte {
	var tmpbuf [binary.MaxVarintLen64]byte
	len := binary.PutUvarint(tmpbuf[:], uint64(n))
	return append(buf, tmpbuf[:len]...)
}

// appendBytes appends body prefixed with its length, so that consecutive
// fields can't run into each other.
func appendBytes(buf, body []byte) []byte {
	buf = appendLength(buf, len(body))
	return append(buf, body...)
}

func appendString(buf []byte, s string) []byte {
	buf = appendLength(buf, len(s))
	return append(buf, s...)
}
