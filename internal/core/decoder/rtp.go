package decoder

import "encoding/binary"

const (
	udpHeaderLen = 8

	rtpMinLength = 12 // fixed RTP header size (RFC 3550 §5.1)

	// ProtocolUDP is the IPv4 protocol number for UDP.
	ProtocolUDP = 17
)

// RTPSSRC extracts the RTP synchronization source identifier from an IPv4
// payload (the bytes following the 20-byte canonical header).
//
// The comma-ok result is a classification, not an error: most traffic is
// simply not RTP. A packet classifies as RTP when the IP protocol is UDP,
// an 8-byte UDP header fits, at least 12 bytes of RTP header follow, and
// the RTP version bits equal 2. No other RTP field is interpreted.
func RTPSSRC(transport []byte, protocol uint8) (uint32, bool) {
	if protocol != ProtocolUDP || len(transport) < udpHeaderLen {
		return 0, false
	}

	// UDP ports, length and checksum are not needed, only the offset.
	payload := transport[udpHeaderLen:]
	if len(payload) < rtpMinLength {
		return 0, false
	}

	// Byte 0: V(2) P(1) X(1) CC(4)
	if version := (payload[0] >> 6) & 0x3; version != 2 {
		return 0, false
	}

	// Bytes 8-11: SSRC
	return binary.BigEndian.Uint32(payload[8:12]), true
}
