package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/justinecabel/3-digit-lotto-analyzer/internal/config"
)

// systemContext anchors every prediction request. "JSON" must appear here so
// the provider's JSON mode accepts the request.
const systemContext = "You are a lottery statistics assistant. You respond with a single valid JSON object and nothing else."

// OpenAIClient calls the chat-completions endpoint and returns the raw
// message content of the first choice.
type OpenAIClient struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration

	// HTTPClient may be replaced in tests; nil selects a default client
	HTTPClient *http.Client
}

// NewOpenAIClient builds a client from the AI configuration
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	return &OpenAIClient{
		APIKey:      cfg.OpenAIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}
}

// ResponseFormat forces structured output from the model
type ResponseFormat struct {
	Type string `json:"type"` // "json_object"
}

// CompleteJSON sends one prompt and returns the model's message content.
// A single attempt only; the caller decides whether the user may retry.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type requestBody struct {
		Model               string          `json:"model"`
		Messages            []message       `json:"messages"`
		Temperature         float64         `json:"temperature,omitempty"`
		MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
		ResponseFormat      *ResponseFormat `json:"response_format,omitempty"`
	}

	reqBody := requestBody{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: systemContext},
			{Role: "user", Content: prompt},
		},
		Temperature:         c.Temperature,
		MaxCompletionTokens: c.MaxTokens,
		ResponseFormat:      &ResponseFormat{Type: "json_object"},
	}

	log.Printf("[OpenAIClient] Sending request - model=%s, temp=%.2f, promptLength=%d",
		c.Model, c.Temperature, len(prompt))

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.Timeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("request timeout after %v: %w", c.Timeout, err)
		}
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	type openAIResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	var openaiResp openAIResponse
	if err := json.Unmarshal(body, &openaiResp); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	if len(openaiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	content := openaiResp.Choices[0].Message.Content
	log.Printf("[OpenAIClient] Received %d bytes of content", len(content))
	return content, nil
}
