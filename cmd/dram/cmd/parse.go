package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/addrmap"
)

var parseCmd = &cobra.Command{
	Use:   "parse <report-file>",
	Short: "Show the bit ranges recognized in a saved DRAMA report",
	Long: `Parse a saved DRAMA report and display the recovered bit ranges for
each DRAM coordinate. Lines that are not bit-range declarations are
ignored, so the raw tool output can be passed in unfiltered.

Examples:
  dram parse report.txt
  dram run --dir ./drama > report.txt && dram parse report.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Parsing DRAMA report: %s\n\n", filename)
	}

	parser, err := addrmap.NewParser(nil)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	mapping, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}

	fmt.Printf("Recognized fields: %d\n", mapping.Len())
	printMapping(mapping)
	return nil
}

// printMapping lists the canonical fields in decode order, marking the
// ones the report never mentioned.
func printMapping(mapping addrmap.Mapping) {
	for _, field := range addrmap.DefaultFields {
		spec, ok := mapping.Lookup(field)
		if !ok {
			fmt.Printf("  %-8s not reported\n", field)
			continue
		}
		fmt.Printf("  %-8s bits %d-%d (offset %d, width %d)\n",
			field, spec.Offset, spec.Offset+spec.Width-1, spec.Offset, spec.Width)
	}
}
