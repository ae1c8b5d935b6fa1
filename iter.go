package qqwry

import (
	"io"

	"github.com/pkg/errors"
)

// The iterator walks the index table entry by entry, decoding each
// entry's record. It keeps its own position but reads through the same
// cursor as Find, so every step re-seeks defensively in case a lookup
// moved the file position in between.

// IterInit prepares a full-table walk. On first use the iterator is
// placed at the table's first entry; a previously positioned iterator is
// left where it was, so a walk can resume after interleaved lookups.
func (db *DB) IterInit() error {
	if db.position == 0 {
		db.position = db.header.start
	}
	return db.cur.seekTo(db.position)
}

// IterHasNext reports whether IterNext has entries left to yield. It is
// false exactly when the iterator stands one entry width past the last
// index entry.
func (db *DB) IterHasNext() bool {
	return db.position != db.header.end+indexLen
}

// IterNext reads the index entry at the iterator's position and decodes
// the record it points to. The position advances by the number of bytes
// actually read; on a truncated table tail that is fewer than the entry
// width, which callers can detect as IterHasNext staying true while
// results degrade. A well-formed table never short-reads.
func (db *DB) IterNext() (Record, error) {
	if err := db.cur.seekTo(db.position); err != nil {
		return Record{}, err
	}

	var entry [indexLen]byte
	n, err := db.cur.Read(entry[:])
	db.position += int64(n)
	if err != nil && err != io.EOF {
		return Record{}, errors.Wrapf(err, "qqwry: read index entry at offset %d", db.position-int64(n))
	}

	return decodeRecord(db.cur, int64(uint24(entry[4:7])))
}
