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

// StreamSummary aggregates one RTP stream observed by Analyze.
type StreamSummary struct {
	SSRC           uint32  `json:"ssrc" yaml:"ssrc"`
	Packets        int     `json:"packets" yaml:"packets"`
	FirstTimestamp float64 `json:"first_timestamp" yaml:"first_timestamp"`
	LastTimestamp  float64 `json:"last_timestamp" yaml:"last_timestamp"`
}

// Duration returns the stream's observed span in seconds.
func (s StreamSummary) Duration() float64 {
	return s.LastTimestamp - s.FirstTimestamp
}

// Report is the result of an Analyze run. Streams is ordered by descending
// packet count.
type Report struct {
	LinkType     uint32          `json:"link_type" yaml:"link_type"`
	TotalPackets int             `json:"total_packets" yaml:"total_packets"`
	RTPPackets   int             `json:"rtp_packets" yaml:"rtp_packets"`
	Streams      []StreamSummary `json:"streams" yaml:"streams"`
}

// Analyze scans the capture at inputPath read-only and summarizes its RTP
// traffic. Both cooked (SLL) and Ethernet captures are understood; records
// of any other link type still count toward TotalPackets but are never
// classified.
func Analyze(inputPath string, opts Options) (*Report, error) {
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

	hdr := reader.Header()
	report := &Report{LinkType: hdr.LinkType()}
	logger.WithField("format", LinkTypeName(report.LinkType)).Info("capture format detected")

	stats := make(map[uint32]*StreamSummary)
	for {
		rec, payload, err := reader.ReadRecord()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		report.TotalPackets++

		var datagram []byte
		switch report.LinkType {
		case pcap.LinkTypeLinuxSLL:
			cooked, rest, err := decoder.DecodeCooked(payload)
			if err != nil || cooked.Protocol != decoder.EtherTypeIPv4 {
				continue
			}
			datagram = rest
		case pcap.LinkTypeEthernet:
			eth, rest, err := decoder.DecodeEthernet(payload)
			if err != nil || eth.EtherType != decoder.EtherTypeIPv4 {
				continue
			}
			datagram = rest
		default:
			continue
		}

		res, err := decoder.CanonicalizeIPv4(datagram)
		if err != nil {
			continue
		}
		ssrc, ok := decoder.RTPSSRC(res.Datagram[20:], res.Header.Protocol)
		if !ok {
			continue
		}
		report.RTPPackets++

		ts := rec.Timestamp()
		if s, ok := stats[ssrc]; ok {
			s.Packets++
			s.LastTimestamp = ts
		} else {
			stats[ssrc] = &StreamSummary{
				SSRC:           ssrc,
				Packets:        1,
				FirstTimestamp: ts,
				LastTimestamp:  ts,
			}
		}
	}

	if reader.Truncated() {
		logger.Debug("input ended inside a record, remainder dropped")
	}

	report.Streams = make([]StreamSummary, 0, len(stats))
	for _, s := range stats {
		report.Streams = append(report.Streams, *s)
	}
	sort.Slice(report.Streams, func(i, j int) bool {
		if report.Streams[i].Packets != report.Streams[j].Packets {
			return report.Streams[i].Packets > report.Streams[j].Packets
		}
		return report.Streams[i].SSRC < report.Streams[j].SSRC
	})

	logger.WithFields(map[string]interface{}{
		"total_packets": report.TotalPackets,
		"rtp_packets":   report.RTPPackets,
		"streams":       len(report.Streams),
	}).Info("analyze finished")
	return report, nil
}

// LinkTypeName names the capture formats this tool recognizes.
func LinkTypeName(lt uint32) string {
	switch lt {
	case pcap.LinkTypeLinuxSLL:
		return "linux cooked (SLL)"
	case pcap.LinkTypeEthernet:
		return "ethernet"
	default:
		return fmt.Sprintf("unknown (linktype=%d)", lt)
	}
}
