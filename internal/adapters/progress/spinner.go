package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// StageComplete is the stage that stops the spinner
const StageComplete = "complete"

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	mu             sync.Mutex
	spinner        *spinner.Spinner
	out            io.Writer
	stages         []stageInfo
	currentStage   string
	stageStartTime time.Time
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stderr,
		stages:  []stageInfo{},
	}
}

// OnProgress handles progress events. A spinner event shows its message
// until the next event; the complete stage stops the spinner.
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		if event.Stage != StageComplete {
			r.currentStage = event.Stage
			r.stageStartTime = time.Now()
			r.stages = append(r.stages, stageInfo{Stage: event.Stage, StartTime: r.stageStartTime})
		}
	}

	if event.Spinner && event.Stage != StageComplete {
		r.spinner.Suffix = " " + r.suffix(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}

	if len(r.stages) > 0 && event.Message != "" {
		r.stages[len(r.stages)-1].Message = event.Message
	}
}

func (r *SpinnerProgressReporter) suffix(event usecase.ProgressEvent) string {
	msg := color.New(color.FgYellow).Sprint(event.Message)
	if event.Total > 0 {
		msg += color.New(color.Faint).Sprintf(" (%d/%d)", event.Current, event.Total)
	}
	return msg
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.println(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.println(color.New(color.FgRed), message)
}

func (r *SpinnerProgressReporter) println(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fmt.Fprintln(r.out, c.Sprint(message))

	if wasActive {
		r.spinner.Start()
	}
}

// Durations returns how long each finished stage took, in order
func (r *SpinnerProgressReporter) Durations() map[string]time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]time.Duration, len(r.stages))
	for _, stage := range r.stages {
		if !stage.EndTime.IsZero() {
			out[stage.Stage] = stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)
		}
	}
	return out
}

// completeCurrentStage marks the current stage as completed
func (r *SpinnerProgressReporter) completeCurrentStage() {
	if r.currentStage == "" || len(r.stages) == 0 {
		return
	}
	r.stages[len(r.stages)-1].EndTime = time.Now()
	r.currentStage = ""
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
