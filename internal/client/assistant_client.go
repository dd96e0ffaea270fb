package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"driverpro-service/internal/config"
	"driverpro-service/internal/model"
)

// AssistantClient talks to the external AI assistant service. Failures are
// returned as plain errors; callers surface them as a user-visible notice and
// carry on, they never abort a flow.
type AssistantClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewAssistantClient(cfg *config.Config) *AssistantClient {
	return &AssistantClient{
		baseURL: cfg.ExternalServices.AIServiceURL,
		token:   cfg.ExternalServices.AIServiceToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type textResponse struct {
	Text string `json:"text"`
}

// Chat sends a user message plus prior turns and returns the assistant reply.
func (c *AssistantClient) Chat(ctx context.Context, message string, history []ChatTurn) (string, error) {
	payload := map[string]interface{}{
		"message": message,
		"history": history,
	}
	return c.post(ctx, "/v1/chat", payload)
}

// ProductivityInsight asks for a short executive summary of the fleet KPIs.
func (c *AssistantClient) ProductivityInsight(ctx context.Context, stats model.DashboardStats) (string, error) {
	payload := map[string]interface{}{
		"avg_travel_minutes": stats.AvgTravelTime / 60,
		"avg_task_minutes":   stats.AvgTaskTime / 60,
		"trips_today":        stats.TotalTripsToday,
		"tasks_today":        stats.TotalTasksToday,
		"total_cost_period":  stats.TotalCostPeriod,
	}
	return c.post(ctx, "/v1/insight", payload)
}

// TranscribeAudio sends base64-encoded audio for transcription. A data-URL
// header ("data:audio/webm;base64,...") is stripped before sending.
func (c *AssistantClient) TranscribeAudio(ctx context.Context, base64Audio, mimeType string) (string, error) {
	if idx := strings.Index(base64Audio, ","); idx >= 0 {
		base64Audio = base64Audio[idx+1:]
	}
	payload := map[string]interface{}{
		"audio":     base64Audio,
		"mime_type": mimeType,
	}
	return c.post(ctx, "/v1/transcribe", payload)
}

func (c *AssistantClient) post(ctx context.Context, path string, payload interface{}) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("AI service URL is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + path

	var resp *http.Response
	var lastErr error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		if attempt == maxRetries-1 {
			return "", fmt.Errorf("failed to reach AI service after %d attempts: %w", maxRetries, lastErr)
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	if resp == nil {
		return "", fmt.Errorf("failed to reach AI service: %w", lastErr)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI service returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed textResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return parsed.Text, nil
}
