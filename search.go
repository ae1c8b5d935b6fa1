package qqwry

import (
	"encoding/binary"
)

// midOffset returns the offset of the middle index entry of [lo, hi].
// Integer division floors the midpoint, biasing toward the lower half.
func midOffset(lo, hi int64) int64 {
	return lo + (hi-lo)/indexLen/2*indexLen
}

// searchIndex binary-searches the index table for the entry whose
// range-start address equals target, returning the record offset stored
// in its 3-byte pointer field.
//
// Only exact equality resolves: once the interval converges to a single
// entry without a match the search reports ErrNotFound, with no fallback
// to the greatest entry below the target. This mirrors the reference
// behavior for the format; see TestFindBetweenEntriesNotFound.
func (db *DB) searchIndex(target uint32) (int64, error) {
	lo, hi := db.header.start, db.header.end
	var entry [indexLen]byte
	for {
		mid := midOffset(lo, hi)
		if err := db.cur.seekTo(mid); err != nil {
			return 0, err
		}
		if err := db.cur.readFull(entry[:]); err != nil {
			return 0, err
		}

		midIP := binary.LittleEndian.Uint32(entry[0:4])
		if target == midIP {
			return int64(uint24(entry[4:7])), nil
		}
		if hi-lo == indexLen {
			return 0, ErrNotFound
		}
		if target > midIP {
			lo = mid
		} else {
			hi = mid
		}
	}
}
