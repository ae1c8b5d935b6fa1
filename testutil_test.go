package qqwry

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingReadSeeker counts Read and Seek calls, for asserting probe
// counts and the seek-if-needed policy.
type countingReadSeeker struct {
	*bytes.Reader
	reads int
	seeks int
}

func (r *countingReadSeeker) Read(p []byte) (int, error) {
	r.reads++
	return r.Reader.Read(p)
}

func (r *countingReadSeeker) Seek(off int64, whence int) (int64, error) {
	r.seeks++
	return r.Reader.Seek(off, whence)
}

// GBK byte sequences used across the tests. ASCII passes through GBK
// unchanged, so mixed strings like 谷歌DNS decode as expected.
var (
	gbkUnitedStates = []byte{0xC3, 0xC0, 0xB9, 0xFA} // 美国
	gbkGoogle       = []byte{0xB9, 0xC8, 0xB8, 0xE8} // 谷歌
)

// imageBuilder assembles a synthetic database file: 8-byte header,
// then records and strings in append order, then the index table.
type imageBuilder struct {
	data    []byte
	entries []indexEntry
}

type indexEntry struct {
	ip     uint32
	offset int64
}

func newImage() *imageBuilder {
	return &imageBuilder{data: make([]byte, headerLen)}
}

// raw appends bytes to the record region, returning their offset.
func (b *imageBuilder) raw(p []byte) int64 {
	off := int64(len(b.data))
	b.data = append(b.data, p...)
	return off
}

// str appends a NUL-terminated string.
func (b *imageBuilder) str(s []byte) int64 {
	off := b.raw(s)
	b.data = append(b.data, 0)
	return off
}

func le24(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

// recordInline appends a record whose country and area are stored
// directly after the address: the country's first byte doubles as the
// mode tag, so it must not be 1 or 2.
func (b *imageBuilder) recordInline(ip [4]byte, country, area []byte) int64 {
	off := b.raw(ip[:])
	b.str(country)
	b.str(area)
	return off
}

// recordMode2 appends a record redirecting the country through a 3-byte
// pointer, with the area fields following the pointer.
func (b *imageBuilder) recordMode2(ip [4]byte, countryPtr int64, area []byte) int64 {
	off := b.raw(ip[:])
	b.raw([]byte{2})
	b.raw(le24(uint32(countryPtr)))
	b.str(area)
	return off
}

// recordMode1 appends a record whose country/area fields live entirely
// behind a single pointer.
func (b *imageBuilder) recordMode1(ip [4]byte, target int64) int64 {
	off := b.raw(ip[:])
	b.raw([]byte{1})
	b.raw(le24(uint32(target)))
	return off
}

func (b *imageBuilder) addEntry(startIP uint32, recordOffset int64) {
	b.entries = append(b.entries, indexEntry{ip: startIP, offset: recordOffset})
}

// build appends the index table sorted by address and back-fills the
// header with the table bounds.
func (b *imageBuilder) build() []byte {
	sort.Slice(b.entries, func(i, j int) bool { return b.entries[i].ip < b.entries[j].ip })

	start := int64(len(b.data))
	for _, e := range b.entries {
		var ip [4]byte
		binary.LittleEndian.PutUint32(ip[:], e.ip)
		b.data = append(b.data, ip[:]...)
		b.data = append(b.data, le24(uint32(e.offset))...)
	}
	end := start + int64(len(b.entries)-1)*indexLen

	binary.LittleEndian.PutUint32(b.data[0:4], uint32(start))
	binary.LittleEndian.PutUint32(b.data[4:8], uint32(end))
	return b.data
}

// open writes the image to a temp file and opens it, closing the DB when
// the test finishes.
func (b *imageBuilder) open(t *testing.T) *DB {
	t.Helper()
	path := writeTempDB(t, b.build())
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func writeTempDB(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qqwry.dat")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
