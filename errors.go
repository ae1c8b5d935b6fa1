package qqwry

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by Find when the binary search converges
	// without an index entry exactly matching the address.
	ErrNotFound = errors.New("qqwry: address not found")

	// ErrMalformedHeader is returned by Open when the file is too short
	// to hold the 8-byte header or the header bounds are inconsistent.
	ErrMalformedHeader = errors.New("qqwry: malformed header")
)

// CorruptAreaError reports an area redirect whose stored pointer is zero.
// Offset is the absolute position of the offending pointer field.
type CorruptAreaError struct {
	Offset int64
}

func (e *CorruptAreaError) Error() string {
	return fmt.Sprintf("qqwry: corrupt area redirect at offset %d", e.Offset)
}
