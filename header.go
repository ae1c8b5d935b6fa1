package qqwry

import (
	"encoding/binary"
)

const (
	// headerLen is the size of the file header: two little-endian
	// uint32 offsets bounding the index table.
	headerLen = 8

	// indexLen is the width of one index entry: a 4-byte little-endian
	// range-start address followed by a 3-byte record offset.
	indexLen = 7
)

// header holds the absolute byte offsets of the first and last index
// entries. Decoded once at Open; immutable afterwards.
type header struct {
	start int64
	end   int64
}

// decodeHeader reads the header from the first bytes of the file.
func decodeHeader(b []byte) (header, bool) {
	if len(b) < headerLen {
		return header{}, false
	}
	h := header{
		start: int64(binary.LittleEndian.Uint32(b[0:4])),
		end:   int64(binary.LittleEndian.Uint32(b[4:8])),
	}
	if h.start > h.end || (h.end-h.start)%indexLen != 0 {
		return header{}, false
	}
	return h, true
}

// entries returns the number of index entries the table holds. The table
// spans [start, end] inclusive, so a start==end header has one entry.
func (h header) entries() int64 {
	return (h.end-h.start)/indexLen + 1
}
