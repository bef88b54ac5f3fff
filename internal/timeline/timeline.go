// Package timeline implements the read-only conversation timeline: a fetched
// list plus a manual refresh trigger, with pure presentation helpers for the
// direction badge, the sentiment color and the voice-entry text placeholder.
package timeline

import (
	"context"
	"strings"
	"sync"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/logger"
)

// NoTextPlaceholder renders in place of an absent message_text, since
// voice-channel entries carry no text.
const NoTextPlaceholder = "(voice / no text)"

// ANSI foreground colors for the sentiment badge.
const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorWhite  = "\033[37m"
)

// Lister fetches the conversation list. *api.Client satisfies it.
type Lister interface {
	ListConversations(ctx context.Context, opts api.ConversationListOptions) ([]api.Conversation, error)
}

// Timeline holds the latest fetched conversation list for one filter.
type Timeline struct {
	lister Lister
	opts   api.ConversationListOptions

	mu     sync.Mutex
	items  []api.Conversation
	issued uint64
}

// New creates a timeline over the given lister and filter options.
func New(lister Lister, opts api.ConversationListOptions) *Timeline {
	return &Timeline{
		lister: lister,
		opts:   opts,
	}
}

// Refresh re-fetches the list and replaces local state. Refresh is only ever
// operator-triggered; a response that is no longer the latest issued is
// discarded.
func (t *Timeline) Refresh(ctx context.Context) error {
	t.mu.Lock()
	t.issued++
	seq := t.issued
	t.mu.Unlock()

	items, err := t.lister.ListConversations(ctx, t.opts)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq < t.issued {
		logger.WithComponent("timeline").Debug("discarding stale refresh response",
			"seq", seq, "latest", t.issued)
		return nil
	}
	t.items = items
	return nil
}

// Items returns a copy of the latest fetched list.
func (t *Timeline) Items() []api.Conversation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]api.Conversation, len(t.items))
	copy(out, t.items)
	return out
}

// DirectionBadge maps a direction to its two-valued badge text.
func DirectionBadge(d api.Direction) string {
	if d == api.DirectionInbound {
		return "inbound"
	}
	return "outbound"
}

// SentimentColor maps a sentiment to an ANSI color code. Unrecognized values
// fall back to the neutral color rather than failing.
func SentimentColor(s api.Sentiment) string {
	switch s {
	case api.SentimentPositive:
		return colorGreen
	case api.SentimentNegative:
		return colorRed
	case api.SentimentConfused:
		return colorYellow
	default:
		return colorWhite
	}
}

// MessageText returns the display text for a conversation entry, substituting
// the placeholder when the entry carries no text.
func MessageText(c api.Conversation) string {
	if c.MessageText == nil || strings.TrimSpace(*c.MessageText) == "" {
		return NoTextPlaceholder
	}
	return *c.MessageText
}

// IntentBadge returns the display text for the intent column.
func IntentBadge(c api.Conversation) string {
	if c.IntentName == nil || *c.IntentName == "" {
		return "-"
	}
	return *c.IntentName
}
