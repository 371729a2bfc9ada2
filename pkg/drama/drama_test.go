package drama

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceDRAM/pkg/addrmap"
)

// Compile-time checks that every source implements ReportSource.
var (
	_ ReportSource = (*Runner)(nil)
	_ ReportSource = FileSource("")
	_ ReportSource = StaticSource("")
)

func TestStaticSource(t *testing.T) {
	report, err := StaticSource("Row bits 1-2\n").Report(context.Background())
	if err != nil {
		t.Fatalf("StaticSource failed: %v", err)
	}
	if report != "Row bits 1-2\n" {
		t.Errorf("Unexpected report: %q", report)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("Bank bits 30-32\n"), 0o644); err != nil {
		t.Fatalf("Failed to write report: %v", err)
	}

	report, err := FileSource(path).Report(context.Background())
	if err != nil {
		t.Fatalf("FileSource failed: %v", err)
	}
	if report != "Bank bits 30-32\n" {
		t.Errorf("Unexpected report: %q", report)
	}

	if _, err := FileSource(filepath.Join(t.TempDir(), "missing.txt")).Report(context.Background()); err == nil {
		t.Error("Expected error for missing report file")
	}
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	if _, err := NewRunner(&Config{Dir: "", Tool: "./drama_tool"}); err == nil {
		t.Error("Expected error for empty tool directory")
	}
	if _, err := NewRunner(&Config{Dir: "drama", Tool: ""}); err == nil {
		t.Error("Expected error for empty tool path")
	}
}

func TestValidateFillsMakeTarget(t *testing.T) {
	cfg := &Config{Dir: "drama", Tool: "./drama_tool"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.MakeTarget != "all" {
		t.Errorf("Expected default make target 'all', got %q", cfg.MakeTarget)
	}
}

func TestCheckDependenciesMissing(t *testing.T) {
	runner, err := NewRunner(&Config{
		Dir:          t.TempDir(),
		Tool:         "./drama_tool",
		Dependencies: []string{"definitely-not-a-real-tool-8c1f"},
	})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	err = runner.CheckDependencies()
	if err == nil {
		t.Fatal("Expected error for bogus dependency")
	}
	if !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Expected ErrMissingDependency, got %v", err)
	}
}

func TestCheckDependenciesEmpty(t *testing.T) {
	runner, err := NewRunner(&Config{Dir: t.TempDir(), Tool: "./drama_tool"})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}
	if err := runner.CheckDependencies(); err != nil {
		t.Errorf("Empty dependency list should pass, got %v", err)
	}
}

func TestReportStopsOnMissingDependency(t *testing.T) {
	runner, err := NewRunner(&Config{
		Dir:          t.TempDir(),
		Tool:         "./drama_tool",
		Dependencies: []string{"definitely-not-a-real-tool-8c1f"},
	})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	if _, err := runner.Report(context.Background()); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Expected ErrMissingDependency from Report, got %v", err)
	}
}

func TestBuildCanceledContext(t *testing.T) {
	runner, err := NewRunner(&Config{Dir: t.TempDir(), Tool: "./drama_tool"})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runner.Build(ctx); err == nil {
		t.Error("Expected error from Build with canceled context")
	}
}

func TestRunCanceledContext(t *testing.T) {
	runner, err := NewRunner(&Config{Dir: t.TempDir(), Tool: "./drama_tool"})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runner.Run(ctx); err == nil {
		t.Error("Expected error from Run with canceled context")
	}
}

func TestRunEmptyOutput(t *testing.T) {
	// true exits 0 without printing anything; an empty report is an
	// acquisition failure, not a success with zero fields.
	runner, err := NewRunner(&Config{Dir: t.TempDir(), Tool: "true"})
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	_, err = runner.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for tool that produced no output")
	}
	if !strings.Contains(err.Error(), "produced no report") {
		t.Errorf("Expected 'produced no report' error, got %v", err)
	}
}

func TestGenerateMapping(t *testing.T) {
	src := StaticSource("Measuring timings...\nRow bits 14-29\nColumn bits 2-13\nBank bits 30-32\ndone\n")

	dec, mapping, err := GenerateMapping(context.Background(), src, nil, addrmap.ZeroFill)
	if err != nil {
		t.Fatalf("GenerateMapping failed: %v", err)
	}
	if mapping.Len() != 3 {
		t.Errorf("Expected 3 fields parsed, got %d", mapping.Len())
	}

	coords := dec.Decode(0x12345678)
	if coords.Row != 0x48D1 || coords.Column != 0x59E || coords.Bank != 0 {
		t.Errorf("Unexpected coordinates: %+v", coords)
	}
}

func TestGenerateMappingStrictPolicy(t *testing.T) {
	src := StaticSource("Row bits 14-29\n")

	_, mapping, err := GenerateMapping(context.Background(), src, nil, addrmap.ErrorOnMissing)
	if err == nil {
		t.Fatal("Expected error for incomplete mapping under strict policy")
	}
	var mfe *addrmap.MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("Expected *addrmap.MissingFieldError, got %T", err)
	}
	// The partial mapping is still returned for diagnostics.
	if mapping.Len() != 1 {
		t.Errorf("Expected partial mapping with 1 field, got %d", mapping.Len())
	}
}

type failingSource struct{}

func (failingSource) Report(context.Context) (string, error) {
	return "", errors.New("boom")
}

func TestGenerateMappingSourceFailure(t *testing.T) {
	_, _, err := GenerateMapping(context.Background(), failingSource{}, nil, addrmap.ZeroFill)
	if err == nil {
		t.Fatal("Expected error when the source fails")
	}
}
