package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/models"
	"go.uber.org/zap"
)

// GroqClient calls a Groq (OpenAI-compatible) chat completions endpoint.
// When no API key is configured it answers with an offline fallback
// response instead of failing, so the service stays usable for demos.
type GroqClient struct {
	url    string
	model  string
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewGroqClient creates a client from config. The API key is read from
// the environment variable named in the config.
func NewGroqClient(cfg *config.GenerationConfig, logger *zap.Logger) *GroqClient {
	return &GroqClient{
		url:    cfg.URL,
		model:  cfg.Model,
		apiKey: os.Getenv(cfg.APIKeyEnv),
		logger: logger,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: time.Duration(cfg.ConnectTimeoutSecs) * time.Second,
				}).DialContext,
			},
		},
	}
}

type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []models.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the messages and returns the generated text. All
// failures come back as *ServiceError.
func (g *GroqClient) ChatCompletion(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error) {
	if g.apiKey == "" {
		g.logger.Warn("generation API key not set, answering in offline fallback mode")
		return offlineResponse(messages), nil
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", &ServiceError{Kind: KindMalformed, Message: "marshal request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", &ServiceError{Kind: KindUnavailable, Message: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", &ServiceError{Kind: KindTimeout, Message: "request timed out", Err: err}
		}
		return "", &ServiceError{Kind: KindUnavailable, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", &ServiceError{Kind: KindUnavailable, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ServiceError{Kind: KindMalformed, Message: "decode response", Err: err}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &ServiceError{Kind: KindMalformed, Message: "response has no completion content"}
	}
	return out.Choices[0].Message.Content, nil
}

// offlineResponse echoes the last user prompt with setup instructions.
func offlineResponse(messages []models.Message) string {
	lastUser := "No prompt provided."
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			lastUser = messages[i].Content
			break
		}
	}
	return "Generation API key not configured. Running in offline fallback mode.\n\n" +
		"Last user prompt:\n" + lastUser + "\n\n" +
		"Please configure the generation API key to enable live answers."
}

func isTimeout(err error) bool {
	if os.IsTimeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
