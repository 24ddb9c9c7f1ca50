package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const chatPath = "/api/chat"

// OllamaConfig 描述 Ollama chat 接口的连接参数。
type OllamaConfig struct {
	Host       string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// OllamaChatModel is an eino chat model backed by Ollama's non-streaming /api/chat.
type OllamaChatModel struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewOllamaChatModel validates cfg and builds the model.
func NewOllamaChatModel(cfg OllamaConfig) (*OllamaChatModel, error) {
	host := strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		return nil, fmt.Errorf("ollama host is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &OllamaChatModel{
		endpoint: host + chatPath,
		model:    cfg.Model,
		client:   client,
	}, nil
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

// ollamaChatResponse covers both output shapes: chat models fill Message,
// some older models only fill Response.
type ollamaChatResponse struct {
	Message  *ollamaMessage `json:"message"`
	Response string         `json:"response"`
	Error    string         `json:"error"`
}

// Generate sends the conversation and returns the assistant message. The
// content is empty when the upstream produced no text.
func (m *OllamaChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	modelName := m.model
	options := model.GetCommonOptions(&model.Options{Model: &modelName}, opts...)
	if options.Model != nil && *options.Model != "" {
		modelName = *options.Model
	}

	payload := ollamaChatRequest{
		Model:    modelName,
		Messages: make([]ollamaMessage, 0, len(input)),
		Stream:   false,
	}
	for _, msg := range input {
		if msg == nil {
			continue
		}
		payload.Messages = append(payload.Messages, ollamaMessage{Role: string(msg.Role), Content: msg.Content})
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ollama response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var decoded ollamaChatResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", decoded.Error)
	}

	content := ""
	if decoded.Message != nil {
		content = strings.TrimSpace(decoded.Message.Content)
	}
	if content == "" {
		content = strings.TrimSpace(decoded.Response)
	}

	return schema.AssistantMessage(content, nil), nil
}

// Stream wraps Generate in a single-chunk stream; /api/chat is always called with stream=false.
func (m *OllamaChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// BindTools is unsupported: the relay never offers tools to the model.
func (m *OllamaChatModel) BindTools(_ []*schema.ToolInfo) error {
	return fmt.Errorf("ollama chat model: tool calling not supported")
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
