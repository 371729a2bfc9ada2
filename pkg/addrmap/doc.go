// Package addrmap turns the textual bit-range report produced by a DRAM
// address-mapping tool into decoders that split a physical address into
// DRAM coordinates (row, column, bank).
//
// # Overview
//
// The package provides two pieces, consumed in sequence:
//   - Parser: converts a line-oriented report into a Mapping from field
//     name to bit range (offset + width)
//   - Decoder: extracts each mapped field from a 64-bit physical address
//
// # Report format
//
// A report line is recognized when it starts with a known field label
// followed by the literal text " bits " and an inclusive decimal bit
// range:
//
//	Row bits 14-29
//	Column bits 2-13
//	Bank bits 30-32
//
// Everything else in the report is ignored. If the same label appears on
// several lines, the last one wins. The label vocabulary is configurable
// via Config.Labels.
//
// # Usage
//
//	mapping := addrmap.ParseReport(reportText)
//
//	dec, err := addrmap.NewDecoder(mapping, addrmap.ZeroFill)
//	if err != nil {
//		return err
//	}
//
//	coords := dec.Decode(0x12345678)
//	fmt.Printf("row=%d column=%d bank=%d\n", coords.Row, coords.Column, coords.Bank)
//
// # Concurrency
//
// Mapping and Decoder are immutable after construction. Decode performs
// no I/O and touches no shared state, so a single Decoder may be used
// from any number of goroutines without synchronization.
package addrmap
