package sora

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adforge/contexts/ad-production/generation-service/ports"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "sora-2-pro"
)

// Client is the OpenAI video generation backend, used as the fallback when
// the primary video provider fails.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey: apiKey,
		HTTP:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string { return "sora" }

type generateRequest struct {
	Model       string `json:"model"`
	Prompt      string `json:"prompt"`
	ImageURL    string `json:"image_url,omitempty"`
	Duration    int    `json:"duration"`
	Resolution  string `json:"resolution"`
	AspectRatio string `json:"aspect_ratio"`
}

type generateResponse struct {
	ID string `json:"id"`
}

type statusResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	VideoURL string `json:"videoUrl"`
	Error    string `json:"error"`
}

func (c *Client) Submit(ctx context.Context, req ports.SubmitRequest) (ports.SubmittedTask, error) {
	duration := req.DurationSeconds
	if duration <= 0 {
		duration = 5
	}
	body := generateRequest{
		Model:       c.model(),
		Prompt:      req.Prompt,
		ImageURL:    req.ReferenceImageURL,
		Duration:    duration,
		Resolution:  "1080p",
		AspectRatio: "16:9",
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return ports.SubmittedTask{}, fmt.Errorf("sora: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/videos/generations", bytes.NewReader(encoded))
	if err != nil {
		return ports.SubmittedTask{}, fmt.Errorf("sora: build request: %w", err)
	}
	c.authorize(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")

	var out generateResponse
	if err := c.do(httpReq, &out); err != nil {
		return ports.SubmittedTask{}, err
	}
	if out.ID == "" {
		return ports.SubmittedTask{}, fmt.Errorf("sora: submit returned no task id")
	}
	return ports.SubmittedTask{TaskID: out.ID, Provider: c.Name(), Model: c.model()}, nil
}

func (c *Client) Poll(ctx context.Context, taskID string) (ports.PollResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/videos/generations/"+taskID, nil)
	if err != nil {
		return ports.PollResult{}, fmt.Errorf("sora: build request: %w", err)
	}
	c.authorize(httpReq)

	var out statusResponse
	if err := c.do(httpReq, &out); err != nil {
		return ports.PollResult{}, err
	}
	switch strings.ToLower(out.Status) {
	case "completed":
		if out.VideoURL == "" {
			return ports.PollResult{State: ports.TaskStateFailed, Reason: "sora: completed task has no video url"}, nil
		}
		return ports.PollResult{State: ports.TaskStateSucceeded, ResultURL: out.VideoURL}, nil
	case "failed":
		reason := out.Error
		if reason == "" {
			reason = "sora: task reported failed"
		}
		return ports.PollResult{State: ports.TaskStateFailed, Reason: reason}, nil
	default:
		return ports.PollResult{State: ports.TaskStateRunning}, nil
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("sora: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sora: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sora: %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(payload))
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("sora: decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) model() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModel
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
