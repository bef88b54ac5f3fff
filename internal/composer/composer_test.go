package composer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
)

// =====================================================================
// Fake sender
// =====================================================================

type fakeSender struct {
	calls   int
	lastReq api.NotificationRequest
	result  api.NotificationResult
	err     error

	// when set, SendNotification blocks until release is closed
	started chan struct{}
	release chan struct{}
}

func (f *fakeSender) SendNotification(ctx context.Context, req api.NotificationRequest) (api.NotificationResult, error) {
	f.calls++
	f.lastReq = req
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	return f.result, f.err
}

func TestToggleRecipientIdempotentPair(t *testing.T) {
	c := New()
	c.ToggleRecipient(1)
	c.ToggleRecipient(3)
	before := c.Recipients()

	c.ToggleRecipient(3)
	c.ToggleRecipient(3)

	assert.Equal(t, before, c.Recipients())
}

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, api.ChannelWhatsAppText, c.Channel())
	assert.Zero(t, c.TemplateID())
	assert.Empty(t, c.Recipients())
	assert.Empty(t, c.VariablesText())
	assert.Nil(t, c.LastResult())
}

func TestSubmitMissingTemplate(t *testing.T) {
	c := New()
	c.ToggleRecipient(1)
	sender := &fakeSender{}

	_, err := c.Submit(context.Background(), sender)

	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonMissingTemplate))
	assert.Zero(t, sender.calls, "no network call may be issued")
}

func TestSubmitEmptyRecipients(t *testing.T) {
	c := New()
	c.SetTemplate(5)
	sender := &fakeSender{}

	_, err := c.Submit(context.Background(), sender)

	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonEmptyRecipients))
	assert.Zero(t, sender.calls, "no network call may be issued")
}

func TestSubmitInvalidVariablesJSON(t *testing.T) {
	c := New()
	c.SetTemplate(5)
	c.ToggleRecipient(1)
	c.SetVariablesText("{not json")
	sender := &fakeSender{}

	_, err := c.Submit(context.Background(), sender)

	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidVariablesJSON))
	assert.Zero(t, sender.calls, "variables are checked before any network call")
}

func TestSubmitBlankVariablesYieldsEmptyMapping(t *testing.T) {
	c := New()
	c.SetTemplate(5)
	c.ToggleRecipient(1)
	c.SetVariablesText("")
	sender := &fakeSender{result: json.RawMessage(`{"sent":[]}`)}

	_, err := c.Submit(context.Background(), sender)

	require.NoError(t, err)
	require.Equal(t, 1, sender.calls)
	assert.NotNil(t, sender.lastReq.Variables)
	assert.Empty(t, sender.lastReq.Variables)
}

func TestBuildRequestConstruction(t *testing.T) {
	c := New()
	c.SetChannel(api.ChannelEmail)
	c.SetTemplate(5)
	c.ToggleRecipient(2)
	c.ToggleRecipient(1)
	c.SetVariablesText(`{"name":"Amy"}`)

	req, err := c.BuildRequest()

	require.NoError(t, err)
	assert.Equal(t, api.ChannelEmail, req.Channel)
	assert.Equal(t, 5, req.TemplateID)
	assert.ElementsMatch(t, []int{1, 2}, req.UserIDs)
	assert.Equal(t, map[string]any{"name": "Amy"}, req.Variables)
}

func TestSubmitSuccessStoresResultAndKeepsState(t *testing.T) {
	c := New()
	c.SetChannel(api.ChannelWhatsAppVoice)
	c.SetTemplate(7)
	c.ToggleRecipient(4)
	c.SetVariablesText(`{"due_date":"30 Nov"}`)
	result := json.RawMessage(`{"sent":[{"user_id":4,"notification_id":9}]}`)
	sender := &fakeSender{result: result}

	got, err := c.Submit(context.Background(), sender)

	require.NoError(t, err)
	assert.JSONEq(t, string(result), string(got))
	assert.JSONEq(t, string(result), string(c.LastResult()))

	// Composer state stays as the operator left it for a quick re-send.
	assert.Equal(t, api.ChannelWhatsAppVoice, c.Channel())
	assert.Equal(t, 7, c.TemplateID())
	assert.Equal(t, []int{4}, c.Recipients())
	assert.Equal(t, `{"due_date":"30 Nov"}`, c.VariablesText())
}

func TestSubmitFailureLeavesLastResult(t *testing.T) {
	c := New()
	c.SetTemplate(5)
	c.ToggleRecipient(1)

	prev := json.RawMessage(`{"sent":[{"user_id":1}]}`)
	okSender := &fakeSender{result: prev}
	_, err := c.Submit(context.Background(), okSender)
	require.NoError(t, err)

	failSender := &fakeSender{err: apperrors.NewRequestFailedError("POST /notifications/send", assert.AnError)}
	_, err = c.Submit(context.Background(), failSender)

	require.Error(t, err)
	assert.True(t, apperrors.IsRequestFailed(err))
	assert.JSONEq(t, string(prev), string(c.LastResult()))
	assert.Equal(t, []int{1}, c.Recipients(), "a failed send must not clear the selection")
}

func TestSubmitInFlightGuard(t *testing.T) {
	c := New()
	c.SetTemplate(5)
	c.ToggleRecipient(1)

	sender := &fakeSender{
		result:  json.RawMessage(`{}`),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), sender)
		done <- err
	}()

	<-sender.started
	_, err := c.Submit(context.Background(), &fakeSender{})
	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonSubmitInFlight))

	close(sender.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, sender.calls)
}
