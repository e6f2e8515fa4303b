// Package pcap reads and writes the classic libpcap capture container: a
// 24-byte global header followed by 16-byte record headers, each trailed by
// that record's captured frame bytes.
//
// The global header is treated as opaque apart from its link-layer type
// field; transcoding must preserve the source file's magic, version and
// snaplen verbatim in every file it emits.
package pcap

import "encoding/binary"

const (
	// GlobalHeaderLen is the size of the capture file's global header.
	GlobalHeaderLen = 24

	// RecordHeaderLen is the size of a per-packet record header.
	RecordHeaderLen = 16
)

// Link-layer type codes (DLT values) this tool recognizes.
const (
	LinkTypeEthernet uint32 = 1   // DLT_EN10MB
	LinkTypeLinuxSLL uint32 = 113 // DLT_LINUX_SLL, "cooked" capture
)

// linkTypeOffset is the byte offset of the little-endian link-layer type
// field within the global header.
const linkTypeOffset = 20

// GlobalHeader is the raw 24-byte global header of a capture file. All
// fields except the link-layer type are carried through untouched.
type GlobalHeader [GlobalHeaderLen]byte

// LinkType returns the declared link-layer type code.
func (h *GlobalHeader) LinkType() uint32 {
	return binary.LittleEndian.Uint32(h[linkTypeOffset:])
}

// SetLinkType overwrites the link-layer type code in place.
func (h *GlobalHeader) SetLinkType(lt uint32) {
	binary.LittleEndian.PutUint32(h[linkTypeOffset:], lt)
}

// RecordHeader is the decoded form of a 16-byte per-packet record header.
// All fields are little-endian on disk.
type RecordHeader struct {
	TsSec       uint32 // timestamp, whole seconds
	TsUsec      uint32 // timestamp, microseconds
	CapturedLen uint32 // bytes of frame data stored in the file
	OriginalLen uint32 // bytes of frame data on the wire
}

// Timestamp returns the record time as fractional seconds, the unit used by
// analysis summaries.
func (h RecordHeader) Timestamp() float64 {
	return float64(h.TsSec) + float64(h.TsUsec)/1e6
}

func (h RecordHeader) marshal(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.TsSec)
	binary.LittleEndian.PutUint32(buf[4:8], h.TsUsec)
	binary.LittleEndian.PutUint32(buf[8:12], h.CapturedLen)
	binary.LittleEndian.PutUint32(buf[12:16], h.OriginalLen)
}

func unmarshalRecordHeader(buf []byte) RecordHeader {
	return RecordHeader{
		TsSec:       binary.LittleEndian.Uint32(buf[0:4]),
		TsUsec:      binary.LittleEndian.Uint32(buf[4:8]),
		CapturedLen: binary.LittleEndian.Uint32(buf[8:12]),
		OriginalLen: binary.LittleEndian.Uint32(buf[12:16]),
	}
}
