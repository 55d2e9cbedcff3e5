package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/soccerdao/dao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestQuietSink(t *testing.T) {
	var errOut bytes.Buffer
	sink := &QuietSink{errOut: &errOut}

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "voting", Message: "Voting...", Spinner: true})
	sink.Info("✅ minted")
	assert.Empty(t, errOut.String())

	sink.Error("🛑 PRIVATE_KEY not found.")
	assert.Equal(t, "🛑 PRIVATE_KEY not found.\n", errOut.String())
}
