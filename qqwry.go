package qqwry

import (
	"io"
	"net/netip"
	"os"

	"github.com/pkg/errors"
)

// DB is a handle to an open QQWry database file. It owns the file and
// its read cursor exclusively; lookups and iteration share that cursor,
// so a DB must not be used concurrently without external locking.
type DB struct {
	f      *os.File
	cur    *cursor
	header header

	// position is the iterator's absolute offset into the index table.
	// Zero means IterInit has not positioned it yet.
	position int64
}

// Open opens a QQWry database file and decodes its header. The file is
// closed on every failure path; a DB is only returned fully initialized.
func Open(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "qqwry: open %q", path)
	}

	var buf [headerLen]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		f.Close()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrMalformedHeader, "%q: fewer than 8 bytes", path)
		}
		return nil, errors.Wrapf(err, "qqwry: read header of %q", path)
	}

	h, ok := decodeHeader(buf[:])
	if !ok {
		f.Close()
		return nil, errors.Wrapf(ErrMalformedHeader, "%q", path)
	}

	c := newCursor(f)
	c.pos = headerLen // Open consumed the header through f directly

	return &DB{f: f, cur: c, header: h}, nil
}

// Close releases the underlying file. Safe to call more than once.
func (db *DB) Close() error {
	if db.f == nil {
		return nil
	}
	err := db.f.Close()
	db.f = nil
	if err != nil {
		return errors.Wrap(err, "qqwry: close database file")
	}
	return nil
}

// Find looks up the record for the index range whose start address
// equals addr. It returns ErrNotFound when the search converges without
// an exact match and a CorruptAreaError when the record's area redirect
// is a zero pointer.
func (db *DB) Find(addr netip.Addr) (Record, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return Record{}, errors.Errorf("qqwry: not an IPv4 address: %s", addr)
	}
	offset, err := db.searchIndex(packIPv4(addr))
	if err != nil {
		return Record{}, err
	}
	return decodeRecord(db.cur, offset)
}

// FindString is Find for a dotted-quad literal.
func (db *DB) FindString(ip string) (Record, error) {
	addr, err := parseIPv4(ip)
	if err != nil {
		return Record{}, err
	}
	return db.Find(addr)
}
