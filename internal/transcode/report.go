package transcode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Render writes the report to w in the requested format: "text" (default),
// "json" or "yaml".
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.renderText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) renderText(w io.Writer) error {
	fmt.Fprintf(w, "Capture format: %s\n", LinkTypeName(r.LinkType))
	fmt.Fprintf(w, "Total packets:  %d\n", r.TotalPackets)
	fmt.Fprintf(w, "RTP packets:    %d\n", r.RTPPackets)
	fmt.Fprintf(w, "RTP streams:    %d\n", len(r.Streams))

	if len(r.Streams) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	data := pterm.TableData{{"SSRC", "Packets", "Duration (s)"}}
	for _, s := range r.Streams {
		data = append(data, []string{
			fmt.Sprintf("0x%08x", s.SSRC),
			fmt.Sprintf("%d", s.Packets),
			fmt.Sprintf("%.2f", s.Duration()),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render()
}
