package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valpere/perekaz/internal/apperr"
	"github.com/valpere/perekaz/internal/postprocess"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIService talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIService struct {
	baseURL string
	client  *http.Client
}

func NewOpenAIService(baseURL string, timeout time.Duration) *OpenAIService {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenAIService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	N           int           `json:"n"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *OpenAIService) Complete(ctx context.Context, cfg Config, req CompletionRequest) (*Completion, error) {
	start := time.Now()

	if cfg.APIKey == "" {
		return nil, apperr.New(apperr.KindAPIKey, "API key required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		N:           1,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to marshal request", err)
	}

	resp, err := doWithRetry(ctx, s.client, s.Name(), func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, "POST",
			fmt.Sprintf("%s/chat/completions", s.baseURL), bytes.NewReader(jsonData))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
		return httpReq, nil
	})
	if err != nil {
		return nil, apperr.Classify(0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var envelope errorEnvelope
		json.NewDecoder(resp.Body).Decode(&envelope)
		return nil, apperr.Classify(resp.StatusCode, envelope.Error.Message, nil)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, apperr.Wrap(apperr.KindAPI, "failed to decode response", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, apperr.New(apperr.KindAPI, "no content generated")
	}

	text := postprocess.Clean(chatResp.Choices[0].Message.Content)
	if text == "" {
		return nil, apperr.New(apperr.KindAPI, "no content generated")
	}

	return &Completion{
		Text:       text,
		TokensUsed: chatResp.Usage.TotalTokens,
		Model:      model,
		Latency:    time.Since(start),
	}, nil
}

func (s *OpenAIService) IsAvailable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/models", s.baseURL), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("API not reachable: %v", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}
