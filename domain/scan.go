package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported report formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ScanRequest describes a single scan (or fix) run
type ScanRequest struct {
	// Paths are the files or directories to audit
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// ApplyFixes enables the mutation stage after scanning
	ApplyFixes bool

	// DryRun computes fixes without writing files back
	DryRun bool

	// Interactive asks for confirmation before each applied fix
	Interactive bool

	// MinScore fails the run (exit code 1) when the final score is lower.
	// 0 disables the gate.
	MinScore int

	// ConfigPath overrides configuration discovery
	ConfigPath string
}

// ScanSummary provides aggregate statistics for a run
type ScanSummary struct {
	FilesScanned    int `json:"files_scanned" yaml:"files_scanned"`
	FilesSkipped    int `json:"files_skipped" yaml:"files_skipped"`
	ElementsScanned int `json:"elements_scanned" yaml:"elements_scanned"`
	TotalViolations int `json:"total_violations" yaml:"total_violations"`
	FixableCount    int `json:"fixable_count" yaml:"fixable_count"`
}

// ScanResult is the aggregate outcome of a run. Score is in [0,100];
// PreviousScore is carried over from the last persisted run for the same
// project, if any.
type ScanResult struct {
	Violations []Violation `json:"violations" yaml:"violations"`
	Summary    ScanSummary `json:"summary" yaml:"summary"`

	Score         int  `json:"score" yaml:"score"`
	PreviousScore *int `json:"previous_score,omitempty" yaml:"previous_score,omitempty"`
	FixedCount    int  `json:"fixed_count" yaml:"fixed_count"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// ScoreDelta returns the signed difference against the previous run and
// whether a previous score existed.
func (r *ScanResult) ScoreDelta() (int, bool) {
	if r.PreviousScore == nil {
		return 0, false
	}
	return r.Score - *r.PreviousScore, true
}

// ScanService defines the core scan use case
type ScanService interface {
	Scan(ctx context.Context, req ScanRequest) (*ScanResult, error)
}

// OutputFormatter formats a scan result for reporting
type OutputFormatter interface {
	Format(result *ScanResult, format OutputFormat) (string, error)
	Write(result *ScanResult, format OutputFormat, writer io.Writer) error
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Update(current int)
	Increment()
	SetDescription(description string)
	Complete()
}

// ProgressManager creates progress tasks for long-running operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}
