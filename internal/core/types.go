// Package core defines shared types with zero external dependencies.
package core

// EthernetHeader represents an L2 Ethernet frame header.
type EthernetHeader struct {
	DstMAC    [6]byte
	SrcMAC    [6]byte
	EtherType uint16 // 0x0800=IPv4
}

// CookedHeader represents the 16-byte Linux "cooked" (SLL) pseudo link-layer
// header that replaces the Ethernet header in captures taken on the "any"
// device. All fields are big-endian on the wire.
type CookedHeader struct {
	PacketType uint16  // host/broadcast/outgoing/...
	DeviceType uint16  // ARPHRD_* of the originating device
	AddrLen    uint16  // valid bytes in Addr
	Addr       [8]byte // hardware address, zero-padded
	Protocol   uint16  // ethertype of the enclosed payload
}

// IPv4Header carries the IPv4 fields this tool reads or preserves across
// canonicalization. Option bytes are never represented; the canonicalizer
// discards them.
type IPv4Header struct {
	HeaderLen int // header byte length (IHL x 4)
	TOS       uint8
	TotalLen  uint16
	ID        uint16
	FlagsFrag uint16
	TTL       uint8
	Protocol  uint8
	SrcIP     [4]byte
	DstIP     [4]byte
}
