// Package core defines shared types and sentinel errors with zero external
// dependencies.
package core

import "errors"

// Sentinel errors. Callers match them with errors.Is; per-record decode
// failures are expected outcomes of scanning mixed traffic and are skipped,
// never surfaced as run failures.
var (
	// ErrInvalidCapture means a capture file's 24-byte global header could
	// not be read in full. This is the only fatal decode error.
	ErrInvalidCapture = errors.New("strix: invalid capture file")

	// ErrPacketTooShort means a frame ended before a required header.
	ErrPacketTooShort = errors.New("strix: packet too short")

	// ErrUnsupportedProto means a header carried a protocol this tool does
	// not transcode (non-IPv4 ethertype, non-IPv4 version, ...).
	ErrUnsupportedProto = errors.New("strix: unsupported protocol")

	// ErrMalformedHeader means a header failed field validation, e.g. an
	// IPv4 IHL below 5 or pointing past the captured bytes.
	ErrMalformedHeader = errors.New("strix: malformed header")
)
