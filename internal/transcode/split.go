package transcode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"firestige.xyz/strix/internal/core/decoder"
	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/pcap"
)

// SplitStream is one per-SSRC output capture produced by Split.
type SplitStream struct {
	SSRC    uint32
	Path    string
	Records int

	file   *os.File
	writer *pcap.Writer
}

// SplitResult reports the streams written by one Split run.
type SplitResult struct {
	Streams map[uint32]*SplitStream
}

// SSRCs returns the observed session identifiers in ascending order.
func (r *SplitResult) SSRCs() []uint32 {
	out := make([]uint32, 0, len(r.Streams))
	for ssrc := range r.Streams {
		out = append(out, ssrc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Split demultiplexes the RTP streams in the cooked capture at inputPath
// into per-SSRC Ethernet-framed captures named
// {outputPrefix}_0x{ssrc:08x}.pcap. Records failing any gate (cooked
// header, IPv4 validity, UDP, RTP version 2) are dropped.
func Split(inputPath, outputPrefix string, opts Options) (*SplitResult, error) {
	logger := log.GetLogger().WithField("input", inputPath)

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	reader, err := pcap.NewReader(in)
	if err != nil {
		return nil, err
	}
	reader.SetMaxCapturedLen(opts.MaxCapturedLen)

	header := reader.Header()
	header.SetLinkType(pcap.LinkTypeEthernet)

	reg := &streamRegistry{
		prefix:  outputPrefix,
		header:  header,
		streams: make(map[uint32]*SplitStream),
	}

	for {
		rec, payload, err := reader.ReadRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			reg.closeAll()
			return nil, err
		}

		newRec, frame, res, ok := rewriteRecord(rec, payload)
		if !ok {
			continue
		}
		ssrc, ok := decoder.RTPSSRC(res.Datagram[20:], res.Header.Protocol)
		if !ok {
			continue
		}

		stream, err := reg.stream(ssrc)
		if err != nil {
			reg.closeAll()
			return nil, err
		}
		if err := stream.writer.WriteRecord(newRec, frame); err != nil {
			reg.closeAll()
			return nil, err
		}
		stream.Records++
	}

	if reader.Truncated() {
		logger.Debug("input ended inside a record, remainder dropped")
	}
	if err := reg.closeAll(); err != nil {
		return nil, err
	}

	result := &SplitResult{Streams: reg.streams}
	for _, ssrc := range result.SSRCs() {
		s := reg.streams[ssrc]
		logger.WithFields(map[string]interface{}{
			"ssrc":    fmt.Sprintf("0x%08x", s.SSRC),
			"packets": s.Records,
			"file":    s.Path,
		}).Info("stream written")
	}
	return result, nil
}

// streamRegistry lazily opens one output capture per SSRC. It is owned by a
// single Split run; all access is single-threaded.
type streamRegistry struct {
	prefix  string
	header  pcap.GlobalHeader
	streams map[uint32]*SplitStream
}

// stream returns the output for ssrc, creating the file and seeding its
// global header on first sight.
func (r *streamRegistry) stream(ssrc uint32) (*SplitStream, error) {
	if s, ok := r.streams[ssrc]; ok {
		return s, nil
	}

	path := fmt.Sprintf("%s_0x%08x.pcap", r.prefix, ssrc)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create stream file: %w", err)
	}
	writer, err := pcap.NewWriter(file, r.header)
	if err != nil {
		file.Close()
		return nil, err
	}

	log.GetLogger().WithFields(map[string]interface{}{
		"ssrc": fmt.Sprintf("0x%08x", ssrc),
		"file": path,
	}).Info("created stream file")

	s := &SplitStream{SSRC: ssrc, Path: path, file: file, writer: writer}
	r.streams[ssrc] = s
	return s, nil
}

func (r *streamRegistry) closeAll() error {
	var errs []error
	for _, s := range r.streams {
		if s.file == nil {
			continue
		}
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", s.Path, err))
		}
		s.file = nil
		s.writer = nil
	}
	return errors.Join(errs...)
}
