package service

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/MaciejWiatr/next-a11y-sub000/domain"
)

// ProgressManagerImpl renders scan progress as terminal bars on stderr
type ProgressManagerImpl struct {
	writer io.Writer
	tasks  []*progressbar.ProgressBar
}

// NewProgressManager returns a bar-backed manager when progress output
// is both requested and useful, the no-op manager otherwise.
func NewProgressManager(enabled bool) domain.ProgressManager {
	if enabled && IsInteractiveEnvironment() {
		return &ProgressManagerImpl{writer: os.Stderr}
	}
	return &NoOpProgressManager{}
}

// IsInteractiveEnvironment reports whether stderr is a terminal and the
// process is not running under CI.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StartTask begins a bar for a bounded unit of work. The throttle keeps
// per-file description updates from flooding slow terminals.
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(24),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(pm.writer, "\n")
		}),
	)
	pm.tasks = append(pm.tasks, bar)
	return &TaskProgressImpl{bar: bar}
}

// IsInteractive reports that fix confirmations may prompt the user
func (pm *ProgressManagerImpl) IsInteractive() bool {
	return true
}

// Close finishes any bar a task left unfinished
func (pm *ProgressManagerImpl) Close() {
	for _, bar := range pm.tasks {
		_ = bar.Finish()
	}
	pm.tasks = nil
}

// TaskProgressImpl wraps a single progress bar
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

// Update sets the absolute progress position
func (tp *TaskProgressImpl) Update(current int) {
	_ = tp.bar.Set(current)
}

// Increment advances the progress by one
func (tp *TaskProgressImpl) Increment() {
	_ = tp.bar.Add(1)
}

// SetDescription updates the current item description
func (tp *TaskProgressImpl) SetDescription(description string) {
	tp.bar.Describe(description)
}

// Complete marks the task as finished
func (tp *TaskProgressImpl) Complete() {
	_ = tp.bar.Finish()
}

// NoOpProgressManager suppresses all progress output. Used for piped
// output, CI, and tests.
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(_ string, _ int) domain.TaskProgress {
	return &NoOpTaskProgress{}
}

func (pm *NoOpProgressManager) IsInteractive() bool { return false }

func (pm *NoOpProgressManager) Close() {}

// NoOpTaskProgress is the task handle handed out by NoOpProgressManager
type NoOpTaskProgress struct{}

func (tp *NoOpTaskProgress) Update(_ int) {}

func (tp *NoOpTaskProgress) Increment() {}

func (tp *NoOpTaskProgress) SetDescription(_ string) {}

func (tp *NoOpTaskProgress) Complete() {}
