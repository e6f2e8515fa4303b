// Package transcode implements the three capture-processing pipelines:
// convert (cooked capture to Ethernet), split (demultiplex RTP streams by
// SSRC) and analyze (summarize RTP traffic). All three are a single forward
// pass over the record stream; a record failing any decode gate is dropped
// from that pipeline's output, never an error.
package transcode

import (
	"firestige.xyz/strix/internal/core/decoder"
	"firestige.xyz/strix/internal/pcap"
)

// Options tunes a pipeline run.
type Options struct {
	// MaxCapturedLen bounds a record's declared captured length when
	// reading; zero keeps pcap.DefaultMaxCapturedLen.
	MaxCapturedLen uint32
}

// rewriteRecord turns one cooked-capture record into an Ethernet-framed
// record with a canonical 20-byte IPv4 header.
//
// ok is false when the record is not cooked-encapsulated IPv4 or its IPv4
// header does not validate; such records are dropped from convert and split
// output. The returned IPv4Result lets split classify the transport payload
// without reparsing.
func rewriteRecord(hdr pcap.RecordHeader, payload []byte) (pcap.RecordHeader, []byte, decoder.IPv4Result, bool) {
	cooked, rest, err := decoder.DecodeCooked(payload)
	if err != nil || cooked.Protocol != decoder.EtherTypeIPv4 {
		return pcap.RecordHeader{}, nil, decoder.IPv4Result{}, false
	}

	res, err := decoder.CanonicalizeIPv4(rest)
	if err != nil {
		return pcap.RecordHeader{}, nil, decoder.IPv4Result{}, false
	}

	frame := decoder.PrependEthernet(res.Datagram)

	// Captured length is the rebuilt frame; original length keeps its
	// bytes-on-the-wire meaning under the transformation: the 16-byte
	// cooked header left the wire, a 14-byte Ethernet header joined it,
	// and any IPv4 option bytes are gone.
	hdr.CapturedLen = uint32(len(frame))
	hdr.OriginalLen = hdr.OriginalLen - decoder.CookedHeaderLen +
		decoder.EthernetHeaderLen - uint32(res.Removed)

	return hdr, frame, res, true
}
