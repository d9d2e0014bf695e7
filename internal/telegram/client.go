package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	timeout        = 10 * time.Second
)

// Client represents a Telegram Bot API client
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Telegram client
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendMessage sends a plain text message to the given chat
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	return c.call(ctx, "sendMessage", map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	})
}

// SendHTML sends an HTML-formatted message to the given chat, with link
// previews disabled.
func (c *Client) SendHTML(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	return c.call(ctx, "sendMessage", map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	})
}

// SetWebhook points the bot's webhook at the given URL. Telegram delivers
// every update for the bot to that endpoint from then on.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook URL is required")
	}

	return c.call(ctx, "setWebhook", map[string]interface{}{
		"url": webhookURL,
	})
}

// ClearWebhook removes the bot's webhook registration
func (c *Client) ClearWebhook(ctx context.Context) error {
	return c.call(ctx, "setWebhook", map[string]interface{}{
		"url": "",
	})
}

// call performs one Bot API method call and checks both the HTTP status and
// the API-level ok flag.
func (c *Client) call(ctx context.Context, method string, payload map[string]interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}
