package qqwry

import (
	"net/netip"
)

// Record is the decoded result of one lookup: the 4-byte address stored
// at the record's own offset plus the country and area strings, already
// converted from GBK. Empty strings are legal values.
type Record struct {
	IP      netip.Addr
	Country string
	Area    string
}

// mode is the tag byte selecting how country/area text is located.
// Values other than the two redirect modes mean the text is stored
// inline and the probed byte is its first character.
type mode uint8

const (
	modeRedirect1 mode = 1 // record-level redirect, may chain once more
	modeRedirect2 mode = 2 // single pointer to the text
)

// decodeRecord resolves the mode-tagged pointer chain at recordOffset
// into a full Record.
//
// Record layout: 4-byte address, 1-byte mode, then mode-dependent
// country/area fields. Redirect pointers are 3-byte little-endian
// absolute offsets stored immediately after the mode byte that announced
// them.
func decodeRecord(c *cursor, recordOffset int64) (Record, error) {
	m, err := c.readMode(recordOffset + 4)
	if err != nil {
		return Record{}, err
	}

	var country, area []byte
	switch m {
	case modeRedirect1:
		p, err := c.readUint24()
		if err != nil {
			return Record{}, err
		}
		country, area, err = decodeRedirected(c, int64(p))
		if err != nil {
			return Record{}, err
		}

	case modeRedirect2:
		p, err := c.readUint24()
		if err != nil {
			return Record{}, err
		}
		country, err = c.readString(int64(p))
		if err != nil {
			return Record{}, err
		}
		// The area origin is computed from the record base plus the
		// decoded country length even though the country bytes live
		// elsewhere; kept as the format's readers have always done it.
		area, err = readArea(c, recordOffset+5+int64(len(country)))
		if err != nil {
			return Record{}, err
		}

	default:
		country, err = c.readString(recordOffset + 4)
		if err != nil {
			return Record{}, err
		}
		area, err = readArea(c, recordOffset+5+int64(len(country)))
		if err != nil {
			return Record{}, err
		}
	}

	ip, err := c.readIP(recordOffset)
	if err != nil {
		return Record{}, err
	}

	return Record{
		IP:      ip,
		Country: decodeGBK(country),
		Area:    decodeGBK(area),
	}, nil
}

// decodeRedirected handles a mode-1 record: the pointer target is probed
// again. A mode-2 probe means the country sits behind a second pointer
// and the area fields follow the pointer at p+4; anything else means the
// country text starts at p itself (the probed byte is its first
// character) with the area fields directly after its terminator.
func decodeRedirected(c *cursor, p int64) (country, area []byte, err error) {
	m, err := c.readMode(p)
	if err != nil {
		return nil, nil, err
	}

	var areaOrigin int64
	if m == modeRedirect2 {
		cp, err := c.readUint24()
		if err != nil {
			return nil, nil, err
		}
		country, err = c.readString(int64(cp))
		if err != nil {
			return nil, nil, err
		}
		areaOrigin = p + 4
	} else {
		country, err = c.readString(p)
		if err != nil {
			return nil, nil, err
		}
		areaOrigin = p + int64(len(country)) + 1
	}

	area, err = readArea(c, areaOrigin)
	if err != nil {
		return nil, nil, err
	}
	return country, area, nil
}

// readArea resolves the area text with an independent mode probe at
// origin. A redirect with a zero pointer is corrupt data, reported with
// the pointer's offset.
func readArea(c *cursor, origin int64) ([]byte, error) {
	m, err := c.readMode(origin)
	if err != nil {
		return nil, err
	}
	switch m {
	case modeRedirect1, modeRedirect2:
		p, err := c.readUint24()
		if err != nil {
			return nil, err
		}
		if p == 0 {
			return nil, &CorruptAreaError{Offset: origin + 1}
		}
		return c.readString(int64(p))
	default:
		return c.readString(origin)
	}
}
