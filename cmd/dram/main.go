package main

import "github.com/OpenTraceLab/OpenTraceDRAM/cmd/dram/cmd"

func main() {
	cmd.Execute()
}
