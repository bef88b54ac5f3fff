package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
)

type fakeLister struct {
	items []api.Conversation
	err   error
	opts  api.ConversationListOptions
}

func (f *fakeLister) ListConversations(ctx context.Context, opts api.ConversationListOptions) ([]api.Conversation, error) {
	f.opts = opts
	return f.items, f.err
}

func strptr(s string) *string { return &s }

func TestRefreshReplacesItems(t *testing.T) {
	lister := &fakeLister{items: []api.Conversation{
		{ID: 1, UserID: 2, Direction: api.DirectionOutbound, Channel: api.ChannelEmail,
			MessageText: strptr("hello"), Sentiment: api.SentimentNeutral, Timestamp: time.Now()},
	}}

	tl := New(lister, api.ConversationListOptions{UserID: 2})
	require.NoError(t, tl.Refresh(context.Background()))

	require.Len(t, tl.Items(), 1)
	assert.Equal(t, 2, lister.opts.UserID)

	lister.items = nil
	require.NoError(t, tl.Refresh(context.Background()))
	assert.Empty(t, tl.Items(), "the latest fetch is authoritative")
}

func TestRefreshFailureLeavesItems(t *testing.T) {
	lister := &fakeLister{items: []api.Conversation{{ID: 1}}}
	tl := New(lister, api.ConversationListOptions{})
	require.NoError(t, tl.Refresh(context.Background()))

	lister.err = assert.AnError
	require.Error(t, tl.Refresh(context.Background()))
	assert.Len(t, tl.Items(), 1)
}

func TestMessageTextPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		text *string
		want string
	}{
		{"absent text renders placeholder", nil, NoTextPlaceholder},
		{"empty text renders placeholder", strptr(""), NoTextPlaceholder},
		{"whitespace text renders placeholder", strptr("  "), NoTextPlaceholder},
		{"present text renders verbatim", strptr("salary due"), "salary due"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MessageText(api.Conversation{MessageText: tt.text})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentimentColor(t *testing.T) {
	tests := []struct {
		name      string
		sentiment api.Sentiment
		want      string
	}{
		{"positive", api.SentimentPositive, colorGreen},
		{"negative", api.SentimentNegative, colorRed},
		{"confused", api.SentimentConfused, colorYellow},
		{"neutral uses fallback", api.SentimentNeutral, colorWhite},
		{"unrecognized value uses fallback", api.Sentiment("ECSTATIC"), colorWhite},
		{"empty value uses fallback", api.Sentiment(""), colorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SentimentColor(tt.sentiment))
		})
	}
}

func TestDirectionBadge(t *testing.T) {
	assert.Equal(t, "inbound", DirectionBadge(api.DirectionInbound))
	assert.Equal(t, "outbound", DirectionBadge(api.DirectionOutbound))
}

func TestIntentBadge(t *testing.T) {
	assert.Equal(t, "-", IntentBadge(api.Conversation{}))
	assert.Equal(t, "COMPLETION", IntentBadge(api.Conversation{IntentName: strptr("COMPLETION")}))
}
