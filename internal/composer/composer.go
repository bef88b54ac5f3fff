// Package composer implements the notification broadcast composer: an
// explicit view-model that accumulates operator input (channel, template,
// recipients, variables), validates it, and submits a well-typed send
// request. Transitions are pure state replacement so each is independently
// testable without a rendering environment.
package composer

import (
	"context"
	"sync"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/utils/setutil"
)

// Sender submits a broadcast request. *api.Client satisfies it.
type Sender interface {
	SendNotification(ctx context.Context, req api.NotificationRequest) (api.NotificationResult, error)
}

// Composer holds the broadcast composition state.
type Composer struct {
	mu            sync.Mutex
	channel       api.Channel
	templateID    int // 0 means no template selected
	recipients    *setutil.IDSet
	variablesText string
	lastResult    api.NotificationResult
	submitting    bool
}

// New creates a composer in its initial state: WhatsApp text channel, no
// template, no recipients, blank variables.
func New() *Composer {
	return &Composer{
		channel:    api.ChannelWhatsAppText,
		recipients: setutil.NewIDSet(),
	}
}

// SetChannel replaces the delivery channel. No validation at input time.
func (c *Composer) SetChannel(channel api.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channel = channel
}

// SetTemplate replaces the selected template id.
func (c *Composer) SetTemplate(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.templateID = id
}

// SetVariablesText replaces the free-form variables text. Parsing happens at
// submit time, never at keystroke time.
func (c *Composer) SetVariablesText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variablesText = text
}

// ToggleRecipient flips membership of userID in the recipient set and
// returns true if the user is selected afterwards. Toggling twice is a no-op
// on the resulting set.
func (c *Composer) ToggleRecipient(userID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipients.Toggle(userID)
}

// IsSelected reports whether userID is in the recipient set.
func (c *Composer) IsSelected(userID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipients.Has(userID)
}

// Recipients returns the selected user ids in ascending order.
func (c *Composer) Recipients() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipients.Sorted()
}

// Channel returns the currently selected channel.
func (c *Composer) Channel() api.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

// TemplateID returns the selected template id, 0 if none.
func (c *Composer) TemplateID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.templateID
}

// VariablesText returns the raw variables text as the operator left it.
func (c *Composer) VariablesText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variablesText
}

// LastResult returns the raw server response of the most recent successful
// submit, or nil if none succeeded yet.
func (c *Composer) LastResult() api.NotificationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastResult
}

// BuildRequest validates the composition and constructs the send request.
// All checks happen strictly before any network call:
// missing template, then empty recipients, then variables parsing.
func (c *Composer) BuildRequest() (api.NotificationRequest, error) {
	c.mu.Lock()
	templateID := c.templateID
	channel := c.channel
	userIDs := c.recipients.Sorted()
	variablesText := c.variablesText
	c.mu.Unlock()

	if templateID == 0 {
		return api.NotificationRequest{}, apperrors.NewValidationError(
			apperrors.ReasonMissingTemplate, "no template selected")
	}
	if len(userIDs) == 0 {
		return api.NotificationRequest{}, apperrors.NewValidationError(
			apperrors.ReasonEmptyRecipients, "no recipients selected")
	}

	variables, err := ParseVariables(variablesText)
	if err != nil {
		return api.NotificationRequest{}, err
	}

	return api.NotificationRequest{
		Channel:    channel,
		TemplateID: templateID,
		UserIDs:    userIDs,
		Variables:  variables,
	}, nil
}

// Submit validates the composition and sends it. On success the raw server
// response is stored for display and all other composer state is left as the
// operator set it, so a quick re-send with tweaks stays possible. On failure
// the last result is unchanged. A second Submit while one is in flight fails
// fast instead of double-sending.
func (c *Composer) Submit(ctx context.Context, sender Sender) (api.NotificationResult, error) {
	req, err := c.BuildRequest()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, apperrors.NewValidationError(apperrors.ReasonSubmitInFlight,
			"a submission is already in flight")
	}
	c.submitting = true
	c.mu.Unlock()

	result, err := sender.SendNotification(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		return nil, err
	}
	c.lastResult = result
	return result, nil
}
