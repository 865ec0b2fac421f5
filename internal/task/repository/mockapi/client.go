package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the remote task REST resource rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a task API client. A non-empty accessToken is sent as a bearer token.
func NewClient(baseURL, accessToken string) *Client {
	httpClient := &http.Client{}
	if accessToken != "" {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: accessToken,
			TokenType:   "Bearer",
		}))
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// APIError is a non-2xx answer from the task API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("task API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the task API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ListTasks fetches the whole collection via GET /tasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, "list", http.MethodGet, c.tasksURL(""), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task via GET /tasks/{id}.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := c.do(ctx, "get", http.MethodGet, c.tasksURL(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask creates a task via POST /tasks.
func (c *Client) CreateTask(ctx context.Context, req TaskRequest) (*Task, error) {
	var t Task
	if err := c.do(ctx, "create", http.MethodPost, c.tasksURL(""), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces a task via PUT /tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id string, req TaskRequest) (*Task, error) {
	var t Task
	if err := c.do(ctx, "update", http.MethodPut, c.tasksURL(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task via DELETE /tasks/{id}. The response body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.tasksURL(id), nil, nil)
}

func (c *Client) tasksURL(id string) string {
	if id == "" {
		return fmt.Sprintf("%s/tasks", c.baseURL)
	}
	return fmt.Sprintf("%s/tasks/%s", c.baseURL, url.PathEscape(id))
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded when non-nil.
func (c *Client) do(ctx context.Context, op, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s task request: %w", op, err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build %s task request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call task %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode task %s response: %w", op, err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// TaskRequest is the body for POST /tasks and PUT /tasks/{id}.
type TaskRequest struct {
	AssignedTo string    `json:"assignedTo"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"dueDate"`
	Priority   string    `json:"priority"`
	Comments   string    `json:"comments"`
}

// Task is the task object returned by the API.
type Task struct {
	ID         string    `json:"id"`
	AssignedTo string    `json:"assignedTo"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"dueDate"`
	Priority   string    `json:"priority"`
	Comments   string    `json:"comments"`

	// BadDueDate holds an unreadable dueDate value; DueDate is zero then.
	BadDueDate string `json:"-"`
}
