package cmd

import (
	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/transcode"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.pcap>",
	Short: "Summarize RTP streams in a capture (read-only)",
	Long: `Analyze scans a cooked or Ethernet capture without writing anything and
reports total packet count, RTP packet count and per-SSRC stream summaries
ordered by descending packet count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(args[0]); err != nil {
			return err
		}
		report, err := transcode.Analyze(args[0], pipelineOptions())
		if err != nil {
			return err
		}

		format := analyzeFormat
		if format == "" {
			format = cfg.Report.Format
		}
		return report.Render(cmd.OutOrStdout(), format)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "",
		"report format: text, json or yaml (default from config)")
}
