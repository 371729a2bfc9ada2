package drama

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrMissingDependency signals that a required build tool is not on
// PATH. Callers can test for it with errors.Is.
var ErrMissingDependency = errors.New("drama: missing dependency")

// Runner builds and executes the DRAMA tool. It implements ReportSource.
type Runner struct {
	cfg *Config
}

// NewRunner creates a runner for the given checkout. A nil config
// selects DefaultConfig.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("drama: invalid config: %w", err)
	}
	return &Runner{cfg: cfg}, nil
}

// CheckDependencies verifies every configured build prerequisite is on
// PATH before anything is compiled or executed.
func (r *Runner) CheckDependencies() error {
	for _, dep := range r.cfg.Dependencies {
		if _, err := exec.LookPath(dep); err != nil {
			log.Errorf("dependency %q is not installed", dep)
			return fmt.Errorf("%w: %s", ErrMissingDependency, dep)
		}
		log.Debugf("dependency %q found", dep)
	}
	return nil
}

// Build compiles the DRAMA tool by running make in the checkout.
func (r *Runner) Build(ctx context.Context) error {
	log.Infof("building target %q with make in %s", r.cfg.MakeTarget, r.cfg.Dir)

	cmd := exec.CommandContext(ctx, "make", r.cfg.MakeTarget)
	cmd.Dir = r.cfg.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			log.Errorf("make output:\n%s", out)
		}
		return fmt.Errorf("drama: make %s: %w", r.cfg.MakeTarget, err)
	}

	log.Infof("built target %q", r.cfg.MakeTarget)
	return nil
}

// Run executes the built tool and returns its stdout. An execution that
// produces no output is treated as a failure: the report is the whole
// point of running it.
func (r *Runner) Run(ctx context.Context) (string, error) {
	log.Infof("executing %s %v", r.cfg.Tool, r.cfg.Args)

	cmd := exec.CommandContext(ctx, r.cfg.Tool, r.cfg.Args...)
	cmd.Dir = r.cfg.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			log.Errorf("tool stderr:\n%s", stderr.String())
		}
		return "", fmt.Errorf("drama: execute %s: %w", r.cfg.Tool, err)
	}

	report := stdout.String()
	if strings.TrimSpace(report) == "" {
		return "", fmt.Errorf("drama: %s produced no report", r.cfg.Tool)
	}

	log.Info("tool executed successfully")
	return report, nil
}

// Report runs the full acquisition pipeline: dependency check, build
// (unless SkipBuild), then execution.
func (r *Runner) Report(ctx context.Context) (string, error) {
	if err := r.CheckDependencies(); err != nil {
		return "", err
	}
	if !r.cfg.SkipBuild {
		if err := r.Build(ctx); err != nil {
			return "", err
		}
	}
	return r.Run(ctx)
}
