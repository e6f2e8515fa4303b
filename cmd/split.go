package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/transcode"
)

var splitCmd = &cobra.Command{
	Use:   "split <input.pcap> <output-prefix>",
	Short: "Demultiplex RTP streams by SSRC into separate captures",
	Long: `Split applies the same cooked-to-Ethernet rewrite as convert, then routes
each UDP/RTP-v2 record into a per-SSRC capture file named
{prefix}_0x{ssrc:08x}.pcap. Records failing any gate are dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(args[0]); err != nil {
			return err
		}
		result, err := transcode.Split(args[0], args[1], pipelineOptions())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Split %d RTP streams\n", len(result.Streams))
		for _, ssrc := range result.SSRCs() {
			s := result.Streams[ssrc]
			fmt.Fprintf(out, "  0x%08x: %d packets -> %s\n", s.SSRC, s.Records, s.Path)
		}
		return nil
	},
}
