package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dram",
	Short: "DRAM address mapping tool driver and decoder",
	Long: `Drives the DRAMA reverse-engineering tool to recover the memory
controller's DRAM address mapping, and decodes physical addresses into
row/column/bank coordinates using the recovered bit ranges.

Examples:
  dram run --dir ./drama --addr 0x12345678     # Build + run DRAMA, decode an address
  dram parse report.txt                        # Show bit ranges from a saved report
  dram decode report.txt 0x12345678 0xdeadbeef # Decode addresses against a saved report`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
