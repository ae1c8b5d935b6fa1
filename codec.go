package qqwry

import (
	"net/netip"

	"github.com/pkg/errors"
)

// packIPv4 converts an IPv4 address to the little-endian packed form the
// index table stores: o0 | o1<<8 | o2<<16 | o3<<24. Note the first octet
// lands in the low byte, unlike the usual network byte order.
func packIPv4(addr netip.Addr) uint32 {
	o := addr.As4()
	return uint32(o[0]) | uint32(o[1])<<8 | uint32(o[2])<<16 | uint32(o[3])<<24
}

// unpackIPv4 is the inverse of packIPv4.
func unpackIPv4(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// uint24 decodes a 3-byte little-endian pointer field.
func uint24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// parseIPv4 parses a dotted-quad string, unwrapping IPv4-mapped IPv6
// addresses. IPv6 addresses are rejected; the database is IPv4 only.
func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, errors.Wrapf(err, "qqwry: invalid address %q", s)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return netip.Addr{}, errors.Errorf("qqwry: not an IPv4 address: %q", s)
	}
	return addr, nil
}
