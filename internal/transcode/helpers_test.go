package transcode

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// The builders below assemble capture bytes the way the original traffic
// would look on disk: little-endian container headers, big-endian network
// headers.

func globalHeaderBytes(linkType uint32) []byte {
	b := make([]byte, 24)
	binary.LittleEndian.PutUint32(b[0:4], 0xa1b2c3d4) // magic
	binary.LittleEndian.PutUint16(b[4:6], 2)          // version major
	binary.LittleEndian.PutUint16(b[6:8], 4)          // version minor
	binary.LittleEndian.PutUint32(b[16:20], 65535)    // snaplen
	binary.LittleEndian.PutUint32(b[20:24], linkType)
	return b
}

type testRecord struct {
	sec, usec uint32
	payload   []byte
	wireExtra uint32 // bytes on the wire beyond the captured bytes
}

func captureBytes(linkType uint32, recs ...testRecord) []byte {
	out := globalHeaderBytes(linkType)
	for _, r := range recs {
		hdr := make([]byte, 16)
		binary.LittleEndian.PutUint32(hdr[0:4], r.sec)
		binary.LittleEndian.PutUint32(hdr[4:8], r.usec)
		binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(r.payload)))
		binary.LittleEndian.PutUint32(hdr[12:16], uint32(len(r.payload))+r.wireExtra)
		out = append(out, hdr...)
		out = append(out, r.payload...)
	}
	return out
}

func writeTempCapture(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.pcap")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sllFrame wraps a payload in a 16-byte Linux cooked header.
func sllFrame(protocol uint16, payload []byte) []byte {
	b := make([]byte, 16, 16+len(payload))
	binary.BigEndian.PutUint16(b[0:2], 0) // packet type: host
	binary.BigEndian.PutUint16(b[2:4], 1) // device type: ethernet
	binary.BigEndian.PutUint16(b[4:6], 6) // address length
	binary.BigEndian.PutUint16(b[14:16], protocol)
	return append(b, payload...)
}

// ipv4Datagram builds an IPv4 datagram with optional header options and a
// deliberately bogus nonzero checksum (the canonicalizer must not touch it
// in the no-options case).
func ipv4Datagram(protocol uint8, options, payload []byte) []byte {
	headerLen := 20 + len(options)
	b := make([]byte, headerLen, headerLen+len(payload))
	b[0] = byte(0x40 | headerLen/4) // version 4, IHL
	binary.BigEndian.PutUint16(b[2:4], uint16(headerLen+len(payload)))
	binary.BigEndian.PutUint16(b[4:6], 0x0001) // identification
	b[8] = 64                                  // TTL
	b[9] = protocol
	binary.BigEndian.PutUint16(b[10:12], 0x1234) // checksum
	copy(b[12:16], []byte{10, 0, 0, 1})
	copy(b[16:20], []byte{10, 0, 0, 2})
	copy(b[20:], options)
	return append(b, payload...)
}

// udpRTPPayload builds an 8-byte UDP header plus a version-2 RTP header
// carrying ssrc, followed by media bytes.
func udpRTPPayload(ssrc uint32, media []byte) []byte {
	b := make([]byte, 8+12, 8+12+len(media))
	binary.BigEndian.PutUint16(b[0:2], 10000)
	binary.BigEndian.PutUint16(b[2:4], 20000)
	binary.BigEndian.PutUint16(b[4:6], uint16(8+12+len(media)))
	rtp := b[8:]
	rtp[0] = 0x80 // version 2
	rtp[1] = 0x08 // payload type 8
	binary.BigEndian.PutUint32(rtp[8:12], ssrc)
	return append(b, media...)
}

// rtpRecord builds one cooked-capture record holding a UDP/RTP-v2 packet.
func rtpRecord(sec, usec, ssrc uint32, media []byte) testRecord {
	return testRecord{
		sec:     sec,
		usec:    usec,
		payload: sllFrame(0x0800, ipv4Datagram(17, nil, udpRTPPayload(ssrc, media))),
	}
}
