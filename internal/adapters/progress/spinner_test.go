package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerProgressReporterStages(t *testing.T) {
	ctx := context.Background()
	r := NewSpinnerProgressReporter()
	var out bytes.Buffer
	r.out = &out

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "delegating", Message: "Delegating voting power...", Spinner: true})
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: "voting", Message: "Voting...", Spinner: true})
	r.Info("hello")
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: StageComplete})

	durations := r.Durations()
	assert.Contains(t, durations, "delegating")
	assert.Contains(t, durations, "voting")
	assert.NotContains(t, durations, StageComplete)
	assert.False(t, r.spinner.Active())
	assert.Contains(t, out.String(), "hello")
}
