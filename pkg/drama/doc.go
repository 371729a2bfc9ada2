// Package drama drives the external DRAMA reverse-engineering tool and
// turns its report into an address decoder.
//
// The DRAMA tool (DRAM Addressing) measures access timings to recover
// the memory controller's DRAM address mapping. This package does not
// reimplement any of that: it checks the build prerequisites, compiles
// the tool with make, runs it, and hands the captured report to
// pkg/addrmap.
//
// # Report sources
//
// Everything downstream only needs the report text, so the tool driver
// hides behind the ReportSource interface. Three implementations:
//   - Runner: check dependencies, make, execute, capture stdout
//   - FileSource: read a previously saved report from disk
//   - StaticSource: a fixed string, for tests and piped input
//
// # Usage
//
//	runner, err := drama.NewRunner(nil) // defaults: ./drama, make all
//	if err != nil {
//		return err
//	}
//
//	dec, mapping, err := drama.GenerateMapping(ctx, runner, nil, addrmap.ZeroFill)
//	if err != nil {
//		return err
//	}
//
//	coords := dec.Decode(physAddr)
//
// Failures here are input-acquisition failures. Once a decoder exists it
// no longer depends on anything in this package.
package drama
