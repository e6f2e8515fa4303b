package decoder

import (
	"encoding/binary"

	"firestige.xyz/strix/internal/core"
)

// EthernetHeaderLen is the fixed size of an untagged Ethernet header.
const EthernetHeaderLen = 14

// Synthesized MAC addresses for frames rebuilt from cooked captures. The
// cooked header carries no Ethernet addressing, so every output frame gets
// the same fixed pair; downstream consumers only care about the ethertype.
var (
	synthDstMAC = [6]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	synthSrcMAC = [6]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x06}
)

// DecodeEthernet decodes an untagged Ethernet frame header.
// Returns the header and the remaining payload.
func DecodeEthernet(data []byte) (core.EthernetHeader, []byte, error) {
	if len(data) < EthernetHeaderLen {
		return core.EthernetHeader{}, nil, core.ErrPacketTooShort
	}

	eth := core.EthernetHeader{}

	// Destination MAC (6 bytes)
	copy(eth.DstMAC[:], data[0:6])

	// Source MAC (6 bytes)
	copy(eth.SrcMAC[:], data[6:12])

	// EtherType (2 bytes)
	eth.EtherType = binary.BigEndian.Uint16(data[12:14])

	return eth, data[EthernetHeaderLen:], nil
}

// PrependEthernet builds an Ethernet frame around an IPv4 datagram using the
// synthesized MAC pair and ethertype 0x0800.
func PrependEthernet(datagram []byte) []byte {
	frame := make([]byte, EthernetHeaderLen+len(datagram))
	copy(frame[0:6], synthDstMAC[:])
	copy(frame[6:12], synthSrcMAC[:])
	binary.BigEndian.PutUint16(frame[12:14], EtherTypeIPv4)
	copy(frame[EthernetHeaderLen:], datagram)
	return frame
}
