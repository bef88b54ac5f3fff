package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
)

func TestSendRejectsUnknownChannel(t *testing.T) {
	cmd := NewCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"send", "--channel", "CARRIER_PIGEON", "--template", "1", "--user", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidDraft))
	assert.Contains(t, err.Error(), "CARRIER_PIGEON")
}
