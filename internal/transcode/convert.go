package transcode

import (
	"errors"
	"fmt"
	"io"
	"os"

	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/pcap"
)

// Convert rewrites the cooked capture at inputPath into an Ethernet-framed
// capture at outputPath and returns the number of packets written. Records
// that are not cooked-encapsulated IPv4 are dropped.
func Convert(inputPath, outputPath string, opts Options) (int, error) {
	logger := log.GetLogger().WithField("input", inputPath)

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	reader, err := pcap.NewReader(in)
	if err != nil {
		return 0, err
	}
	reader.SetMaxCapturedLen(opts.MaxCapturedLen)

	header := reader.Header()
	header.SetLinkType(pcap.LinkTypeEthernet)

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}

	writer, err := pcap.NewWriter(out, header)
	if err != nil {
		out.Close()
		return 0, err
	}

	written := 0
	for {
		rec, payload, err := reader.ReadRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			out.Close()
			return written, err
		}

		newRec, frame, _, ok := rewriteRecord(rec, payload)
		if !ok {
			continue
		}
		if err := writer.WriteRecord(newRec, frame); err != nil {
			out.Close()
			return written, err
		}
		written++
	}

	if reader.Truncated() {
		logger.Debug("input ended inside a record, remainder dropped")
	}
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("close output: %w", err)
	}

	logger.WithField("packets", written).Info("converted cooked capture to ethernet")
	return written, nil
}
