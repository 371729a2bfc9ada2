package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/addrmap"
)

var decodeStrict bool

var decodeCmd = &cobra.Command{
	Use:   "decode <report-file> <addr>...",
	Short: "Decode physical addresses using a saved DRAMA report",
	Long: `Parse a saved DRAMA report and decode one or more physical addresses
into DRAM coordinates. Addresses are accepted in hex (0x...), octal (0...)
or decimal.

By default a coordinate the report never mentioned decodes to 0 for every
address. With --strict the command fails instead, naming the missing
fields.

Examples:
  dram decode report.txt 0x12345678
  dram decode --strict report.txt 0x12345678 0xdeadbeef`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDecodeCmd,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().BoolVar(&decodeStrict, "strict", false,
		"fail when the report lacks a row/column/bank bit range")
}

func runDecodeCmd(cmd *cobra.Command, args []string) error {
	filename := args[0]

	parser, err := addrmap.NewParser(nil)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	mapping, err := parser.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}

	policy := addrmap.ZeroFill
	if decodeStrict {
		policy = addrmap.ErrorOnMissing
	}
	dec, err := addrmap.NewDecoder(mapping, policy)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if verbose {
		printMapping(mapping)
		fmt.Println()
	}

	return decodeAddresses(dec, args[1:])
}

// decodeAddresses decodes each address argument and prints its
// coordinates, one line per address.
func decodeAddresses(dec *addrmap.Decoder, addrs []string) error {
	for _, arg := range addrs {
		addr, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid address %q: %w", arg, err)
		}
		coords := dec.Decode(addr)
		fmt.Printf("0x%X -> row=%d column=%d bank=%d\n",
			addr, coords.Row, coords.Column, coords.Bank)
	}
	return nil
}
