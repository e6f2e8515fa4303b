package pcap

import (
	"errors"
	"fmt"
	"io"

	"firestige.xyz/strix/internal/core"
)

// DefaultMaxCapturedLen bounds the per-record allocation. Real snaplens top
// out at 262144 (tcpdump's MAXIMUM_SNAPLEN); a declared captured length
// beyond the configured bound is read as a corrupt trailing record.
const DefaultMaxCapturedLen = 262144

// Reader streams records out of a capture file.
//
// Truncation tolerance: capture files routinely end mid-record (the writer
// was killed, the disk filled). A record header shorter than 16 bytes, or a
// payload shorter than its declared captured length, terminates the stream
// cleanly with io.EOF rather than an error. Truncated reports whether that
// leniency was exercised.
type Reader struct {
	r              io.Reader
	header         GlobalHeader
	maxCapturedLen uint32
	truncated      bool
}

// NewReader reads the global header and prepares record iteration.
// A global header shorter than 24 bytes is fatal: core.ErrInvalidCapture.
func NewReader(r io.Reader) (*Reader, error) {
	pr := &Reader{r: r, maxCapturedLen: DefaultMaxCapturedLen}
	if _, err := io.ReadFull(r, pr.header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, core.ErrInvalidCapture
		}
		return nil, fmt.Errorf("read global header: %w", err)
	}
	return pr, nil
}

// SetMaxCapturedLen overrides the per-record allocation bound. Zero keeps
// the default.
func (r *Reader) SetMaxCapturedLen(n uint32) {
	if n > 0 {
		r.maxCapturedLen = n
	}
}

// Header returns a copy of the file's global header.
func (r *Reader) Header() GlobalHeader {
	return r.header
}

// ReadRecord returns the next record header and its payload bytes.
// It returns io.EOF on a clean end of stream, which includes a truncated
// trailing record (see Reader).
func (r *Reader) ReadRecord() (RecordHeader, []byte, error) {
	var buf [RecordHeaderLen]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return RecordHeader{}, nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			r.truncated = true
			return RecordHeader{}, nil, io.EOF
		}
		return RecordHeader{}, nil, fmt.Errorf("read record header: %w", err)
	}

	hdr := unmarshalRecordHeader(buf[:])
	if hdr.CapturedLen > r.maxCapturedLen {
		r.truncated = true
		return RecordHeader{}, nil, io.EOF
	}

	payload := make([]byte, hdr.CapturedLen)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.truncated = true
			return RecordHeader{}, nil, io.EOF
		}
		return RecordHeader{}, nil, fmt.Errorf("read record payload: %w", err)
	}

	return hdr, payload, nil
}

// Truncated reports whether the stream ended inside a record.
func (r *Reader) Truncated() bool {
	return r.truncated
}
