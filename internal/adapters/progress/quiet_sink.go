package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/soccerdao/dao-cli/internal/usecase"
)

// QuietSink is the reporter for --json and non-interactive runs. Spinners
// and info lines are dropped so stdout stays machine readable; errors still
// go to stderr.
type QuietSink struct {
	errOut io.Writer
}

// NewQuietSink creates a sink that only reports errors, on stderr
func NewQuietSink() *QuietSink {
	return &QuietSink{errOut: os.Stderr}
}

func (s *QuietSink) OnProgress(context.Context, usecase.ProgressEvent) {}

func (s *QuietSink) Info(string) {}

func (s *QuietSink) Error(message string) {
	fmt.Fprintln(s.errOut, message)
}

var _ usecase.ProgressSink = (*QuietSink)(nil)
