package freepik

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adforge/contexts/ad-production/generation-service/domain/entities"
	"adforge/contexts/ad-production/generation-service/ports"
)

const (
	defaultBaseURL    = "https://api.freepik.com"
	defaultImageModel = "flux-dev"
	defaultVideoModel = "kling-v2"
)

// Client talks to the Freepik generation API. Images go through
// text-to-image, videos through image-to-video; both return a task id that
// is resolved by polling or by the provider webhook.
type Client struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	VideoModel string
	// WebhookURL, when set, is passed on submit so Freepik pushes terminal
	// states instead of relying on polling alone.
	WebhookURL string
	HTTP       *http.Client
}

func NewClient(apiKey, webhookURL string) *Client {
	return &Client{
		APIKey:     apiKey,
		WebhookURL: webhookURL,
		HTTP:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Name() string { return "freepik" }

type submitBody struct {
	Prompt         string       `json:"prompt,omitempty"`
	NegativePrompt string       `json:"negative_prompt,omitempty"`
	Image          any          `json:"image,omitempty"`
	Duration       int          `json:"duration,omitempty"`
	WebhookURL     string       `json:"webhook_url,omitempty"`
}

type imageSize struct {
	Size string `json:"size"`
}

type taskData struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Video struct {
		URL string `json:"url"`
	} `json:"video"`
}

type taskEnvelope struct {
	Data taskData `json:"data"`
}

func (c *Client) Submit(ctx context.Context, req ports.SubmitRequest) (ports.SubmittedTask, error) {
	var path string
	var model string
	body := submitBody{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		WebhookURL:     c.WebhookURL,
	}
	switch req.Kind {
	case entities.JobKindVideo:
		model = c.videoModel()
		path = "/v1/ai/image-to-video/" + model
		body.Image = req.ReferenceImageURL
		body.Duration = req.DurationSeconds
	default:
		model = c.imageModel()
		path = "/v1/ai/text-to-image/" + model
		body.Image = imageSize{Size: "landscape_16_9"}
	}

	var out taskEnvelope
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return ports.SubmittedTask{}, err
	}
	if out.Data.TaskID == "" {
		return ports.SubmittedTask{}, fmt.Errorf("freepik: submit returned no task id")
	}
	return ports.SubmittedTask{
		TaskID:   out.Data.TaskID,
		Provider: c.Name(),
		Model:    model,
	}, nil
}

func (c *Client) Poll(ctx context.Context, taskID string) (ports.PollResult, error) {
	// Task ids are looked up under the endpoint family that created them;
	// video tasks are namespaced by the client when submitted.
	for _, endpoint := range []string{"text-to-image", "image-to-video"} {
		var out taskEnvelope
		err := c.do(ctx, http.MethodGet, "/v1/ai/"+endpoint+"/"+taskID, nil, &out)
		if err != nil {
			continue
		}
		return pollResultFrom(out.Data), nil
	}
	return ports.PollResult{State: ports.TaskStateFailed, Reason: "freepik: task lookup failed"}, nil
}

func pollResultFrom(data taskData) ports.PollResult {
	switch strings.ToUpper(data.Status) {
	case "COMPLETED":
		url := data.Video.URL
		if url == "" && len(data.Images) > 0 {
			url = data.Images[0].URL
		}
		if url == "" {
			return ports.PollResult{State: ports.TaskStateFailed, Reason: "freepik: completed task has no asset url"}
		}
		return ports.PollResult{State: ports.TaskStateSucceeded, ResultURL: url}
	case "FAILED", "ERROR", "CANCELLED":
		return ports.PollResult{State: ports.TaskStateFailed, Reason: "freepik: task reported " + strings.ToLower(data.Status)}
	default:
		return ports.PollResult{State: ports.TaskStateRunning}
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("freepik: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, reader)
	if err != nil {
		return fmt.Errorf("freepik: build request: %w", err)
	}
	req.Header.Set("x-freepik-api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("freepik: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("freepik: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("freepik: %s %s: status %d: %s", method, path, resp.StatusCode, string(payload))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("freepik: decode response: %w", err)
	}
	return nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) imageModel() string {
	if c.ImageModel != "" {
		return c.ImageModel
	}
	return defaultImageModel
}

func (c *Client) videoModel() string {
	if c.VideoModel != "" {
		return c.VideoModel
	}
	return defaultVideoModel
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
