package drama

import "fmt"

// Config describes where the DRAMA checkout lives and how to build and
// invoke it.
type Config struct {
	// Dir is the DRAMA checkout containing the makefile. Build and Run
	// both execute with this as their working directory.
	Dir string

	// Tool is the path of the built binary, relative to Dir.
	Tool string

	// MakeTarget is the make target used to build the tool (default "all").
	MakeTarget string

	// Args are extra arguments passed to the tool on invocation.
	Args []string

	// Dependencies are the commands that must be on PATH before
	// building (default: make, gcc).
	Dependencies []string

	// SkipBuild skips the make step, for checkouts built out of band.
	SkipBuild bool
}

// DefaultConfig returns a Config matching a vanilla DRAMA checkout in
// ./drama.
func DefaultConfig() *Config {
	return &Config{
		Dir:          "drama",
		Tool:         "./drama_tool",
		MakeTarget:   "all",
		Dependencies: []string{"make", "gcc"},
	}
}

// Validate checks the configuration for errors and fills in defaults.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("drama: config has no tool directory")
	}
	if c.Tool == "" {
		return fmt.Errorf("drama: config has no tool path")
	}
	if c.MakeTarget == "" {
		c.MakeTarget = "all"
	}
	return nil
}
