package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/valpere/perekaz/internal/apperr"
	"github.com/valpere/perekaz/internal/postprocess"
)

const DefaultOllamaModel = "llama3.2"

// OllamaService talks to a self-hosted Ollama instance. No credential
// is required; an empty API key is fine.
type OllamaService struct {
	baseURL string
	client  *http.Client
}

func NewOllamaService(baseURL string, timeout time.Duration) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OllamaService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *OllamaService) Name() string {
	return "ollama"
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	PromptEvalCount int `json:"prompt_eval_count"`
	EvalCount       int `json:"eval_count"`
}

func (s *OllamaService) Complete(ctx context.Context, cfg Config, req CompletionRequest) (*Completion, error) {
	start := time.Now()

	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}

	body := ollamaChatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Stream: false,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to marshal request", err)
	}

	resp, err := doWithRetry(ctx, s.client, s.Name(), func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/chat", s.baseURL), bytes.NewReader(jsonData))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		return httpReq, nil
	})
	if err != nil {
		return nil, apperr.Classify(0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Classify(resp.StatusCode, "", nil)
	}

	var chatResp ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, apperr.Wrap(apperr.KindAPI, "failed to decode response", err)
	}

	text := postprocess.Clean(chatResp.Message.Content)
	if text == "" {
		return nil, apperr.New(apperr.KindAPI, "no content generated")
	}

	return &Completion{
		Text:       text,
		TokensUsed: chatResp.PromptEvalCount + chatResp.EvalCount,
		Model:      model,
		Latency:    time.Since(start),
	}, nil
}

func (s *OllamaService) IsAvailable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/tags", s.baseURL), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("Ollama not available: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Ollama returned status %d", resp.StatusCode)
	}
	return nil
}
