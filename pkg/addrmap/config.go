package addrmap

import "fmt"

// Config controls which report labels the parser recognizes.
type Config struct {
	// Labels maps a report label (case-sensitive, as printed by the
	// tool) to the canonical field it describes. Extending this map is
	// how support for additional coordinates (rank, channel, ...) is
	// added without touching the parser.
	Labels map[string]Field
}

// DefaultConfig returns the label vocabulary used by the DRAMA tool's
// report output.
func DefaultConfig() *Config {
	return &Config{
		Labels: map[string]Field{
			"Row":    FieldRow,
			"Column": FieldColumn,
			"Bank":   FieldBank,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Labels) == 0 {
		return fmt.Errorf("addrmap: config has no labels")
	}
	for label, field := range c.Labels {
		if label == "" {
			return fmt.Errorf("addrmap: empty label for field %q", field)
		}
		if field == "" {
			return fmt.Errorf("addrmap: label %q maps to empty field", label)
		}
	}
	return nil
}
