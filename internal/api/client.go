package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/logger"
)

// Client is the notification platform API client. It is stateless and safe
// for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new API client.
//
// Parameters:
//   - baseURL: The backend base URL (e.g., "http://localhost:8000")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUsers retrieves the full user directory.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doRequest(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new directory user and returns the server's copy.
func (c *Client) CreateUser(ctx context.Context, draft UserDraft) (*User, error) {
	var user User
	if err := c.doRequest(ctx, http.MethodPost, "/users", draft, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTemplates retrieves the full template directory.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	var templates []Template
	if err := c.doRequest(ctx, http.MethodGet, "/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateTemplate creates a new message template and returns the server's copy.
func (c *Client) CreateTemplate(ctx context.Context, draft TemplateDraft) (*Template, error) {
	var template Template
	if err := c.doRequest(ctx, http.MethodPost, "/templates", draft, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// SendNotification submits a broadcast request and returns the server's
// response verbatim.
func (c *Client) SendNotification(ctx context.Context, req NotificationRequest) (NotificationResult, error) {
	var result json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, "/notifications/send", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListConversations retrieves the conversation timeline, newest first.
func (c *Client) ListConversations(ctx context.Context, opts ConversationListOptions) ([]Conversation, error) {
	path := "/conversations"
	if opts.UserID > 0 {
		q := url.Values{}
		q.Set("user_id", strconv.Itoa(opts.UserID))
		path += "?" + q.Encode()
	}

	var conversations []Conversation
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ListWorkflows retrieves all workflow definitions.
func (c *Client) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	var workflows []Workflow
	if err := c.doRequest(ctx, http.MethodGet, "/workflows", nil, &workflows); err != nil {
		return nil, err
	}
	return workflows, nil
}

// CreateWorkflow creates a new workflow definition.
func (c *Client) CreateWorkflow(ctx context.Context, draft WorkflowDraft) (*Workflow, error) {
	var workflow Workflow
	if err := c.doRequest(ctx, http.MethodPost, "/workflows", draft, &workflow); err != nil {
		return nil, err
	}
	return &workflow, nil
}

// CreateWorkflowStep attaches a step to an existing workflow.
func (c *Client) CreateWorkflowStep(ctx context.Context, draft WorkflowStepDraft) (*WorkflowStepResult, error) {
	var result WorkflowStepResult
	if err := c.doRequest(ctx, http.MethodPost, "/workflow-steps", draft, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// doRequest performs an HTTP request and decodes the response. Every failure
// mode, transport error or non-2xx status alike, surfaces as a single
// request-failed error; no retries.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewRequestFailedError("marshal request", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.NewRequestFailedError("create request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithComponent("api").Debug("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return apperrors.NewRequestFailedError(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewRequestFailedError("read response", err)
	}

	logger.WithComponent("api").Debug("request completed",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewRequestFailedError(
			fmt.Sprintf("%s %s", method, path),
			fmt.Errorf("status=%d body=%s", resp.StatusCode, string(respBody)))
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return apperrors.NewRequestFailedError("unmarshal response", err)
	}

	return nil
}
