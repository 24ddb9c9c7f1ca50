package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/samber/lo"

	"github.com/zhouzirui/mindnest/backend/internal/config"
	"github.com/zhouzirui/mindnest/backend/internal/model/chat"
	"github.com/zhouzirui/mindnest/backend/pkg/logger"
)

// HistoryLimit is how many trailing history entries are considered per request.
const HistoryLimit = 24

// FallbackReply is returned when the model answers with no text.
const FallbackReply = "I'm here with you. Could you share a bit more about how you're feeling?"

var ErrBackendUnavailable = errors.New("LLM backend unavailable")

// Service relays a conversation to the chat model through an eino prompt chain.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds an Ollama-backed relay from configuration.
func NewService(ctx context.Context, cfg config.LLMConfig) (*Service, error) {
	chatModel, err := NewOllamaChatModel(OllamaConfig{
		Host:    cfg.Host,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, chatModel)
}

// NewServiceWithModel compiles the relay chain around an arbitrary chat model.
func NewServiceWithModel(ctx context.Context, chatModel model.ChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Reply forwards the system prompt, the usable tail of history and the new
// user message, and returns the model's answer. Every upstream failure is
// reported as ErrBackendUnavailable. No retries.
func (s *Service) Reply(ctx context.Context, history []chat.HistoryEntry, userMessage string) (string, error) {
	input := map[string]any{
		"system":  SystemPrompt,
		"history": buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		logger.FromContext(ctx).Error("llm backend call failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	reply := ""
	if response != nil {
		reply = strings.TrimSpace(response.Content)
	}
	if reply == "" {
		reply = FallbackReply
	}

	logger.FromContext(ctx).Debug("llm reply generated", "history", len(history), "length", len(reply))
	return reply, nil
}

// buildHistoryMessages keeps the last HistoryLimit entries, then drops those
// with an unknown role or non-text content.
func buildHistoryMessages(entries []chat.HistoryEntry) []*schema.Message {
	if len(entries) > HistoryLimit {
		entries = entries[len(entries)-HistoryLimit:]
	}

	return lo.FilterMap(entries, func(entry chat.HistoryEntry, _ int) (*schema.Message, bool) {
		msg, ok := entry.Message()
		if !ok {
			return nil, false
		}
		switch msg.Role {
		case chat.RoleSystem:
			return schema.SystemMessage(msg.Content), true
		case chat.RoleAssistant:
			return schema.AssistantMessage(msg.Content, nil), true
		default:
			return schema.UserMessage(msg.Content), true
		}
	})
}
