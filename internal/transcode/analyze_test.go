package transcode

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"firestige.xyz/strix/internal/pcap"
)

func TestAnalyzeCookedCapture(t *testing.T) {
	in := captureBytes(pcap.LinkTypeLinuxSLL,
		rtpRecord(100, 0, 0xaaaaaaaa, []byte{1}),
		rtpRecord(101, 250000, 0xbbbbbbbb, []byte{2}),
		rtpRecord(102, 0, 0xbbbbbbbb, []byte{3}),
		rtpRecord(104, 500000, 0xbbbbbbbb, []byte{4}),
		// Non-IP record: counted in totals, never classified.
		testRecord{sec: 105, payload: sllFrame(0x0806, make([]byte, 28))},
	)
	inPath := writeTempCapture(t, in)

	report, err := Analyze(inPath, Options{})
	require.NoError(t, err)

	assert.Equal(t, pcap.LinkTypeLinuxSLL, report.LinkType)
	assert.Equal(t, 5, report.TotalPackets)
	assert.Equal(t, 4, report.RTPPackets)
	require.Len(t, report.Streams, 2)

	// Ordered by descending packet count.
	assert.Equal(t, uint32(0xbbbbbbbb), report.Streams[0].SSRC)
	assert.Equal(t, 3, report.Streams[0].Packets)
	assert.InDelta(t, 101.25, report.Streams[0].FirstTimestamp, 1e-9)
	assert.InDelta(t, 104.5, report.Streams[0].LastTimestamp, 1e-9)
	assert.InDelta(t, 3.25, report.Streams[0].Duration(), 1e-9)

	assert.Equal(t, uint32(0xaaaaaaaa), report.Streams[1].SSRC)
	assert.Equal(t, 1, report.Streams[1].Packets)
	assert.InDelta(t, 0.0, report.Streams[1].Duration(), 1e-9)
}

// Round-trip framing: analyze must see Ethernet, never cooked, in anything
// convert produced.
func TestAnalyzeConvertOutput(t *testing.T) {
	in := captureBytes(pcap.LinkTypeLinuxSLL,
		rtpRecord(1, 0, 0x11111111, []byte{1}),
		rtpRecord(2, 0, 0x22222222, []byte{2}),
	)
	inPath := writeTempCapture(t, in)
	outPath := filepath.Join(t.TempDir(), "out.pcap")

	written, err := Convert(inPath, outPath, Options{})
	require.NoError(t, err)
	require.Equal(t, 2, written)

	report, err := Analyze(outPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, pcap.LinkTypeEthernet, report.LinkType)
	assert.Equal(t, 2, report.TotalPackets)
	assert.Equal(t, 2, report.RTPPackets)
	assert.Len(t, report.Streams, 2)
}

func TestAnalyzeUnknownLinkType(t *testing.T) {
	in := captureBytes(228, // DLT_IPV4, not handled
		rtpRecord(1, 0, 0x11111111, []byte{1}),
		testRecord{sec: 2, payload: make([]byte, 40)},
	)
	inPath := writeTempCapture(t, in)

	report, err := Analyze(inPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalPackets)
	assert.Equal(t, 0, report.RTPPackets)
	assert.Empty(t, report.Streams)
}

func TestAnalyzeTruncatedTrailingRecord(t *testing.T) {
	in := captureBytes(pcap.LinkTypeLinuxSLL, rtpRecord(1, 0, 0x11111111, nil))
	// Record header declaring 100 payload bytes, with only 10 present.
	tail := captureBytes(pcap.LinkTypeLinuxSLL, testRecord{payload: make([]byte, 100)})[24 : 24+16+10]
	inPath := writeTempCapture(t, append(in, tail...))

	report, err := Analyze(inPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalPackets)
	assert.Equal(t, 1, report.RTPPackets)
}

func TestAnalyzeInvalidCapture(t *testing.T) {
	inPath := writeTempCapture(t, make([]byte, 23))
	_, err := Analyze(inPath, Options{})
	assert.Error(t, err)
}

func TestReportRenderFormats(t *testing.T) {
	report := &Report{
		LinkType:     pcap.LinkTypeEthernet,
		TotalPackets: 10,
		RTPPackets:   4,
		Streams: []StreamSummary{
			{SSRC: 0x11111111, Packets: 3, FirstTimestamp: 1, LastTimestamp: 2.5},
			{SSRC: 0x22222222, Packets: 1, FirstTimestamp: 1, LastTimestamp: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "json"))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *report, fromJSON)

	buf.Reset()
	require.NoError(t, report.Render(&buf, "yaml"))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *report, fromYAML)

	buf.Reset()
	require.NoError(t, report.Render(&buf, "text"))
	assert.Contains(t, buf.String(), "Total packets:  10")
	assert.Contains(t, buf.String(), "0x11111111")

	assert.Error(t, report.Render(&buf, "csv"))
}
