package decoder

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
)

const (
	ipv4HeaderMinLen = 20
	ipv4HeaderMaxLen = 60 // IHL is a 4-bit word count, 15*4
)

// IPv4Result is the outcome of canonicalizing an IPv4 datagram.
type IPv4Result struct {
	// Datagram always starts with an exact 20-byte option-free header. It
	// aliases the input when no options were present, and is a fresh copy
	// with options stripped otherwise.
	Datagram []byte

	// Header holds the parsed fields of the (possibly rebuilt) header.
	Header core.IPv4Header

	// Removed counts option bytes discarded from the original header.
	Removed int
}

// CanonicalizeIPv4 validates an IPv4 datagram and reduces its header to the
// fixed 20-byte option-free form.
//
// Headers that already have IHL=5 pass through untouched, checksum included.
// Headers with options are rebuilt: byte 0 becomes 0x45, the checksum is
// zeroed (deliberately not recomputed, downstream consumers of these
// captures do not validate it), total length shrinks by the number of
// discarded option bytes, and every other field plus the payload is copied
// verbatim.
func CanonicalizeIPv4(data []byte) (IPv4Result, error) {
	if len(data) < ipv4HeaderMinLen {
		return IPv4Result{}, core.ErrPacketTooShort
	}

	// Version (upper 4 bits of byte 0)
	if version := data[0] >> 4; version != 4 {
		return IPv4Result{}, core.ErrUnsupportedProto
	}

	// IHL (lower 4 bits of byte 0), in 32-bit words
	headerLen := int(data[0]&0x0F) * 4
	if headerLen < ipv4HeaderMinLen || headerLen > ipv4HeaderMaxLen || headerLen > len(data) {
		return IPv4Result{}, core.ErrMalformedHeader
	}

	hdr := core.IPv4Header{
		HeaderLen: headerLen,
		TOS:       data[1],
		TotalLen:  binary.BigEndian.Uint16(data[2:4]),
		ID:        binary.BigEndian.Uint16(data[4:6]),
		FlagsFrag: binary.BigEndian.Uint16(data[6:8]),
		TTL:       data[8],
		Protocol:  data[9],
	}
	copy(hdr.SrcIP[:], data[12:16])
	copy(hdr.DstIP[:], data[16:20])

	if headerLen == ipv4HeaderMinLen {
		// No options, nothing to rewrite.
		return IPv4Result{Datagram: data, Header: hdr}, nil
	}

	removed := headerLen - ipv4HeaderMinLen
	hdr.TotalLen -= uint16(removed)
	hdr.HeaderLen = ipv4HeaderMinLen

	payload := data[headerLen:]
	out := make([]byte, ipv4HeaderMinLen+len(payload))
	out[0] = 0x45 // version 4, IHL 5
	out[1] = hdr.TOS
	binary.BigEndian.PutUint16(out[2:4], hdr.TotalLen)
	binary.BigEndian.PutUint16(out[4:6], hdr.ID)
	binary.BigEndian.PutUint16(out[6:8], hdr.FlagsFrag)
	out[8] = hdr.TTL
	out[9] = hdr.Protocol
	// out[10:12] stays zero: checksum is not recomputed
	copy(out[12:16], hdr.SrcIP[:])
	copy(out[16:20], hdr.DstIP[:])
	copy(out[ipv4HeaderMinLen:], payload)

	return IPv4Result{Datagram: out, Header: hdr, Removed: removed}, nil
}
