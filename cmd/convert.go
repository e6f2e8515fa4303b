package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/transcode"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.pcap> <output.pcap>",
	Short: "Rewrite a cooked (SLL) capture as an Ethernet capture",
	Long: `Convert strips the 16-byte Linux cooked header from every IPv4 record,
canonicalizes the IPv4 header to the option-free 20-byte form, prepends a
synthesized Ethernet header and writes the result to a new capture file.
Records that are not cooked-encapsulated IPv4 are dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(args[0]); err != nil {
			return err
		}
		written, err := transcode.Convert(args[0], args[1], pipelineOptions())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d packets\n", written)
		return nil
	},
}
