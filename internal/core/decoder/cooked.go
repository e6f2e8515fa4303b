// Package decoder implements link, network and transport header decoding
// for capture transcoding. All functions operate on raw frame bytes and
// return sentinel errors from internal/core on short or malformed input.
package decoder

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
)

const (
	// CookedHeaderLen is the fixed size of the Linux SLL header.
	CookedHeaderLen = 16

	// EtherTypeIPv4 marks an enclosed IPv4 datagram in both the cooked
	// protocol field and the Ethernet ethertype field.
	EtherTypeIPv4 = 0x0800
)

// DecodeCooked decodes the 16-byte Linux cooked (SLL) header.
// Returns the header and the remaining payload.
func DecodeCooked(data []byte) (core.CookedHeader, []byte, error) {
	if len(data) < CookedHeaderLen {
		return core.CookedHeader{}, nil, core.ErrPacketTooShort
	}

	var h core.CookedHeader

	// Packet type (2 bytes at offset 0)
	h.PacketType = binary.BigEndian.Uint16(data[0:2])

	// Device type (2 bytes at offset 2)
	h.DeviceType = binary.BigEndian.Uint16(data[2:4])

	// Address length (2 bytes at offset 4)
	h.AddrLen = binary.BigEndian.Uint16(data[4:6])

	// Hardware address (8 bytes at offset 6, zero-padded)
	copy(h.Addr[:], data[6:14])

	// Protocol / ethertype (2 bytes at offset 14)
	h.Protocol = binary.BigEndian.Uint16(data[14:16])

	return h, data[CookedHeaderLen:], nil
}
