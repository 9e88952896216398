package claudevision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// Client obtains a raw model reply for a screenshot.
type Client interface {
	Describe(ctx context.Context, image []byte) (string, error)
}

// ClientConfig configures the HTTP client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type httpClient struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient creates a messages-API client.
func NewClient(cfg ClientConfig) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &httpClient{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *httpClient) Describe(ctx context.Context, image []byte) (string, error) {
	payload := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: maxTokens,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{Type: "image", Source: &imageSource{
					Type:      "base64",
					MediaType: detectMediaType(image),
					Data:      base64.StdEncoding.EncodeToString(image),
				}},
				{Type: "text", Text: extractionPrompt},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersionHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrTransientExtraction, ErrMsgRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrTransientExtraction, ErrMsgRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		// Rate limits and server errors are worth retrying.
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return "", fmt.Errorf("%w: "+ErrMsgBadStatus, domain.ErrTransientExtraction, resp.StatusCode)
		}
		return "", fmt.Errorf(ErrMsgBadStatus, resp.StatusCode)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRequestFailed, err)
	}
	for _, block := range decoded.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%s", ErrMsgEmptyReply)
}

// detectMediaType sniffs the submitted screenshot format.
func detectMediaType(image []byte) string {
	if len(image) >= 3 && image[0] == 0xFF && image[1] == 0xD8 {
		return "image/jpeg"
	}
	return "image/png"
}
