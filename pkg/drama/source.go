package drama

import (
	"context"
	"fmt"
	"os"
)

// ReportSource yields the raw report text to parse. How the text is
// obtained (live tool run, saved file, test fixture) is the
// implementation's business.
type ReportSource interface {
	Report(ctx context.Context) (string, error)
}

// FileSource reads a previously captured report from disk.
type FileSource string

// Report reads the whole file.
func (s FileSource) Report(_ context.Context) (string, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return "", fmt.Errorf("drama: read report: %w", err)
	}
	return string(data), nil
}

// StaticSource is a fixed report, useful for tests and piped input.
type StaticSource string

// Report returns the string as-is.
func (s StaticSource) Report(_ context.Context) (string, error) {
	return string(s), nil
}
