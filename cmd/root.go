// Package cmd implements the strix CLI using the cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/config"
	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/transcode"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "strix",
	Short: "Strix - offline pcap transcoder and RTP stream splitter",
	Long: `Strix reworks packet captures taken in Linux cooked (SLL) encapsulation
into Ethernet-framed captures with canonical 20-byte IPv4 headers, splits
embedded RTP media into per-SSRC capture files, and summarizes RTP traffic.

Commands:
  convert   rewrite a cooked capture as an Ethernet capture
  split     demultiplex RTP streams by SSRC into separate captures
  analyze   summarize RTP streams in a capture (read-only)`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"override configured log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := log.Init(c.Log); err != nil {
		return err
	}
	cfg = c
	return nil
}

// requireInputFile validates the input path before the pipeline runs;
// the pipelines themselves assume an existing, readable file.
func requireInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input file %s is a directory", path)
	}
	return nil
}

func pipelineOptions() transcode.Options {
	return transcode.Options{MaxCapturedLen: cfg.Capture.MaxCapturedLen}
}
