package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/addrmap"
	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/drama"
)

var (
	runDir       string
	runTool      string
	runTarget    string
	runSkipBuild bool
	runStrict    bool
	runAddrs     []string
)

var runCmd = &cobra.Command{
	Use:   "run [-- tool-args...]",
	Short: "Build and execute the DRAMA tool, then decode addresses",
	Long: `Run the full pipeline against a DRAMA checkout: check that the build
dependencies (make, gcc) are installed, build the tool with make, execute
it, and parse the captured report into an address decoder.

Arguments after -- are passed to the tool unchanged.

Examples:
  dram run --dir ./drama
  dram run --dir ./drama --addr 0x12345678 --addr 0xdeadbeef
  dram run --dir ./drama --skip-build -- --rounds 500`,
	RunE: runRunCmd,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runDir, "dir", "drama",
		"DRAMA checkout directory containing the makefile")
	runCmd.Flags().StringVar(&runTool, "tool", "./drama_tool",
		"path of the built tool binary, relative to --dir")
	runCmd.Flags().StringVar(&runTarget, "target", "all",
		"make target used to build the tool")
	runCmd.Flags().BoolVar(&runSkipBuild, "skip-build", false,
		"skip the make step (tool already built)")
	runCmd.Flags().BoolVar(&runStrict, "strict", false,
		"fail when the report lacks a row/column/bank bit range")
	runCmd.Flags().StringArrayVar(&runAddrs, "addr", nil,
		"physical address to decode (repeatable)")
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	runner, err := drama.NewRunner(&drama.Config{
		Dir:          runDir,
		Tool:         runTool,
		MakeTarget:   runTarget,
		Args:         args,
		Dependencies: []string{"make", "gcc"},
		SkipBuild:    runSkipBuild,
	})
	if err != nil {
		return err
	}

	policy := addrmap.ZeroFill
	if runStrict {
		policy = addrmap.ErrorOnMissing
	}

	dec, mapping, err := drama.GenerateMapping(cmd.Context(), runner, nil, policy)
	if err != nil {
		return err
	}

	fmt.Printf("Recovered DRAM address mapping (%d field(s)):\n", mapping.Len())
	printMapping(mapping)

	if len(runAddrs) > 0 {
		fmt.Println()
		return decodeAddresses(dec, runAddrs)
	}
	return nil
}
