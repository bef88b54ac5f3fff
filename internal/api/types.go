// Package api provides a typed client for the notification platform backend.
package api

import (
	"encoding/json"
	"time"
)

// UserType classifies a directory user.
type UserType string

const (
	UserTypeEmployer UserType = "EMPLOYER"
	UserTypeMaid     UserType = "MAID"
)

// Channel is the delivery medium for a notification.
type Channel string

const (
	ChannelWhatsAppText  Channel = "WHATSAPP_TEXT"
	ChannelWhatsAppVoice Channel = "WHATSAPP_VOICE"
	ChannelEmail         Channel = "EMAIL"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelWhatsAppText, ChannelWhatsAppVoice, ChannelEmail:
		return true
	}
	return false
}

// Direction marks a conversation entry as inbound or outbound.
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

// Sentiment is the server-side classification of a conversation entry.
// Values outside the known constants are possible and must render with the
// neutral fallback.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentConfused Sentiment = "CONFUSED"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// User represents a directory user. All fields are server-owned; the console
// never mutates an existing user.
type User struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	PhoneNumber       string   `json:"phone_number"`
	Email             *string  `json:"email"`
	UserType          UserType `json:"user_type"`
	PreferredLanguage string   `json:"preferred_language"`
	Status            string   `json:"status"`
}

// UserDraft is the payload for creating a user. The server assigns id and
// status.
type UserDraft struct {
	Name              string   `json:"name" validate:"required"`
	PhoneNumber       string   `json:"phone_number" validate:"required"`
	Email             string   `json:"email,omitempty" validate:"omitempty,email"`
	UserType          UserType `json:"user_type" validate:"required,oneof=EMPLOYER MAID"`
	PreferredLanguage string   `json:"preferred_language" validate:"required,oneof=en hi kn ne"`
}

// Template represents a message template. Immutable from the console's view
// once created.
type Template struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Channel  Channel `json:"channel"`
	Language string  `json:"language"`
	Body     string  `json:"body"`
}

// TemplateDraft is the payload for creating a template. The body may contain
// {placeholder} tokens which the server substitutes at send time.
type TemplateDraft struct {
	Name     string  `json:"name" validate:"required"`
	Channel  Channel `json:"channel" validate:"required,oneof=WHATSAPP_TEXT WHATSAPP_VOICE EMAIL"`
	Language string  `json:"language" validate:"required,oneof=en hi kn ne"`
	Body     string  `json:"body" validate:"required"`
}

// NotificationRequest is the broadcast send payload.
type NotificationRequest struct {
	Channel    Channel        `json:"channel"`
	TemplateID int            `json:"template_id"`
	UserIDs    []int          `json:"user_ids"`
	Variables  map[string]any `json:"variables"`
}

// NotificationResult is the server's acknowledgment for a send request. The
// console displays it verbatim and does not interpret its fields.
type NotificationResult = json.RawMessage

// Conversation is a single inbound or outbound message on the timeline.
// Entirely server-owned and read-only.
type Conversation struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	Direction   Direction `json:"direction"`
	Channel     Channel   `json:"channel"`
	MessageText *string   `json:"message_text"`
	AudioURL    *string   `json:"audio_url"`
	Language    *string   `json:"language"`
	IntentName  *string   `json:"intent_name"`
	Sentiment   Sentiment `json:"sentiment"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConversationListOptions filters the conversation list.
type ConversationListOptions struct {
	UserID int
}

// Workflow represents a messaging workflow definition.
type Workflow struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	IsActive    bool    `json:"is_active"`
}

// WorkflowDraft is the payload for creating a workflow.
type WorkflowDraft struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

// WorkflowStepDraft is the payload for attaching a step to a workflow.
type WorkflowStepDraft struct {
	WorkflowID        int    `json:"workflow_id" validate:"required"`
	StepOrder         int    `json:"step_order" validate:"min=0"`
	TriggerType       string `json:"trigger_type" validate:"required,oneof=TIME_BASED EVENT_BASED REPLY_BASED"`
	TemplateID        *int   `json:"template_id,omitempty"`
	ExpectedIntent    string `json:"expected_intent,omitempty"`
	NextStepOnSuccess *int   `json:"next_step_on_success,omitempty"`
	NextStepOnFailure *int   `json:"next_step_on_failure,omitempty"`
}

// WorkflowStepResult is the server's acknowledgment for a step creation.
type WorkflowStepResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
