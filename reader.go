package qqwry

import (
	"io"
	"net/netip"

	"github.com/pkg/errors"
)

// cursor wraps the shared read cursor of the database file. It tracks the
// current absolute offset and only issues a Seek when the requested
// position differs, so lookup and iteration can interleave over the same
// underlying handle without redundant syscalls.
//
// Every read the engine performs goes through the cursor; reading through
// the wrapped ReadSeeker directly would desynchronize the tracked offset.
type cursor struct {
	r   io.ReadSeeker
	pos int64
}

func newCursor(r io.ReadSeeker) *cursor {
	return &cursor{r: r}
}

// seekTo positions the cursor at an absolute offset, seeking only if the
// tracked position differs.
func (c *cursor) seekTo(off int64) error {
	if c.pos == off {
		return nil
	}
	n, err := c.r.Seek(off, io.SeekStart)
	if err != nil {
		return errors.Wrapf(err, "qqwry: seek to offset %d", off)
	}
	c.pos = n
	return nil
}

// Read implements io.Reader, keeping the tracked position in sync.
func (c *cursor) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.pos += int64(n)
	return n, err
}

// readFull fills p from the current position.
func (c *cursor) readFull(p []byte) error {
	if _, err := io.ReadFull(c, p); err != nil {
		return errors.Wrapf(err, "qqwry: read %d bytes at offset %d", len(p), c.pos)
	}
	return nil
}

// readMode reads the single mode byte stored at off. The cursor is left
// immediately after it, where redirect pointers live.
func (c *cursor) readMode(off int64) (mode, error) {
	if err := c.seekTo(off); err != nil {
		return 0, err
	}
	var b [1]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return mode(b[0]), nil
}

// readUint24 reads a 3-byte little-endian pointer at the current
// position, i.e. directly after a mode byte.
func (c *cursor) readUint24() (uint32, error) {
	var b [3]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return uint24(b[:]), nil
}

// readIP reads the 4-byte address stored at the start of a record. The
// octets are stored in plain order, not the packed integer form.
func (c *cursor) readIP(off int64) (netip.Addr, error) {
	if err := c.seekTo(off); err != nil {
		return netip.Addr{}, err
	}
	var b [4]byte
	if err := c.readFull(b[:]); err != nil {
		return netip.Addr{}, err
	}
	return netip.AddrFrom4(b), nil
}

// readString reads the NUL-terminated byte sequence starting at off,
// excluding the terminator. There is no length prefix and no bound other
// than the zero byte.
func (c *cursor) readString(off int64) ([]byte, error) {
	if err := c.seekTo(off); err != nil {
		return nil, err
	}
	var out []byte
	var b [1]byte
	for {
		if err := c.readFull(b[:]); err != nil {
			return nil, err
		}
		if b[0] == 0 {
			return out, nil
		}
		out = append(out, b[0])
	}
}
