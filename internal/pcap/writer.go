package pcap

import (
	"fmt"
	"io"
)

// Writer emits records into a capture file. The global header is written up
// front by NewWriter; every WriteRecord call is fully flushed to the
// underlying writer before it returns.
type Writer struct {
	w io.Writer
}

// NewWriter writes the 24-byte global header and returns a record writer.
// The header is emitted verbatim; callers retype the link-layer field with
// GlobalHeader.SetLinkType before constructing the Writer.
func NewWriter(w io.Writer, header GlobalHeader) (*Writer, error) {
	if _, err := w.Write(header[:]); err != nil {
		return nil, fmt.Errorf("write global header: %w", err)
	}
	return &Writer{w: w}, nil
}

// WriteRecord writes one record header and its payload.
// hdr.CapturedLen must equal len(payload).
func (w *Writer) WriteRecord(hdr RecordHeader, payload []byte) error {
	if int(hdr.CapturedLen) != len(payload) {
		return fmt.Errorf("record header declares %d captured bytes, payload has %d",
			hdr.CapturedLen, len(payload))
	}

	var buf [RecordHeaderLen]byte
	hdr.marshal(buf[:])
	if _, err := w.w.Write(buf[:]); err != nil {
		return fmt.Errorf("write record header: %w", err)
	}
	if _, err := w.w.Write(payload); err != nil {
		return fmt.Errorf("write record payload: %w", err)
	}
	return nil
}
